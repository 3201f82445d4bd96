package mailsmodels

import (
	"fmt"

	"github.com/fura-1993/totono/utils"
)

func buildCustomerAutoReplyBody(data InquiryMailData) string {
	photoText := ""
	if len(data.PhotoURLs) > 0 {
		photoText = fmt.Sprintf("\n添付いただいた写真（%d枚）を確認いたしました。\n", len(data.PhotoURLs))
	}

	detailsText := ""
	if data.Details != "" {
		detailsText = fmt.Sprintf("ご相談内容: %s\n", data.Details)
	}

	return fmt.Sprintf(`%s 様

この度は「トトノ」にお問い合わせいただき、誠にありがとうございます。
以下の内容でお問い合わせを受け付けました。

問い合わせID: %d
ご希望のサービス: %s
ご希望時期: %s
ご希望連絡方法: %s
%s%s
【今後の流れ】
1. 担当者が内容を確認し、12時間以内にご連絡いたします
2. 現地確認の日程を調整させていただきます
3. 現地にてお見積もりをご提示いたします

お急ぎの場合は、お電話でもお問い合わせいただけます。
電話: 090-5306-0197（7:00〜20:00）

---
トトノ
茨城県桜川市を拠点に、庭木の剪定・伐採・草刈りを承ります。`,
		data.Name,
		data.InquiryID,
		data.serviceText(),
		orLabel(data.PreferredTiming, "未選択"),
		orLabel(data.PreferredContactMethod, "未選択"),
		detailsText,
		photoText,
	)
}

// CustomerAutoReply envoie l'accusé de réception au client. L'absence d'email
// n'est pas une erreur: la demande a simplement été déposée sans adresse.
func CustomerAutoReply(data InquiryMailData) error {
	if data.Email == "" {
		return nil
	}

	subject := "Subject: 【トトノ】お問い合わせありがとうございます\r\n"
	mime := "MIME-version: 1.0;\r\nContent-Type: text/plain; charset=\"UTF-8\";\r\n\r\n"

	message := []byte(subject + mime + buildCustomerAutoReplyBody(data))
	return utils.SendMail(data.Email, message)
}
