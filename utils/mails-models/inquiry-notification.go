package mailsmodels

import (
	"fmt"
	"os"
	"strings"

	"github.com/fura-1993/totono/utils"
)

// InquiryMailData porte l'instantané d'une demande au moment de l'envoi des
// notifications. Les champs optionnels vides sont rendus avec leurs libellés
// de repli (未選択 / 未入力).
type InquiryMailData struct {
	InquiryID              uint
	Name                   string
	Email                  string
	Phone                  string
	Address                string
	ServiceType            string
	Services               []string
	Details                string
	PreferredTiming        string
	PreferredContactMethod string
	Message                string
	PhotoURLs              []string
}

func (d InquiryMailData) serviceText() string {
	if len(d.Services) > 0 {
		return strings.Join(d.Services, ", ")
	}
	if d.ServiceType != "" {
		return d.ServiceType
	}
	return "未選択"
}

func orLabel(value, label string) string {
	if value == "" {
		return label
	}
	return value
}

func buildAdminNotificationBody(data InquiryMailData) string {
	photoText := ""
	if len(data.PhotoURLs) > 0 {
		lines := make([]string, 0, len(data.PhotoURLs))
		for i, url := range data.PhotoURLs {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, url))
		}
		photoText = "\n【添付写真】\n" + strings.Join(lines, "\n")
	}

	return fmt.Sprintf(`新規お問い合わせがありました

【問い合わせID】%d
【お名前】%s
【メールアドレス】%s
【電話番号】%s
【ご住所】%s
【ご依頼内容】%s
【ご希望時期】%s
【希望連絡方法】%s
【詳細】%s
【お問い合わせ内容】
%s
%s

---
このメールはトトノLPのお問い合わせフォームから自動送信されています。`,
		data.InquiryID,
		data.Name,
		orLabel(data.Email, "未入力"),
		orLabel(data.Phone, "未入力"),
		orLabel(data.Address, "未入力"),
		data.serviceText(),
		orLabel(data.PreferredTiming, "未選択"),
		orLabel(data.PreferredContactMethod, "未選択"),
		orLabel(data.Details, "未入力"),
		data.Message,
		photoText,
	)
}

// AdminNotification envoie l'alerte interne vers l'adresse de l'exploitant
func AdminNotification(data InquiryMailData) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		return fmt.Errorf("ADMIN_EMAIL is required in environment variables")
	}

	photoSuffix := ""
	if len(data.PhotoURLs) > 0 {
		photoSuffix = fmt.Sprintf(" (写真%d枚)", len(data.PhotoURLs))
	}

	subject := fmt.Sprintf("Subject: 【トトノ】新規お問い合わせ: %s様%s\r\n", data.Name, photoSuffix)
	mime := "MIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n"

	message := []byte(subject + mime + buildAdminNotificationBody(data))
	return utils.SendMail(adminEmail, message)
}
