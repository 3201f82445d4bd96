package inquiries

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// submission porte les champs normalisés d'une soumission du formulaire de
// contact. Les champs texte sont déjà trimés; Services est la liste résolue.
type submission struct {
	Name                   string
	Email                  string
	Phone                  string
	Address                string
	ServiceType            string
	Services               []string
	Details                string
	PreferredTiming        string
	PreferredContactMethod string
	RawMessage             string
	Message                string
	UtmParams              datatypes.JSON
	TrafficSource          string
	LandingPage            string
	Referrer               string
}

func parseSubmission(c *gin.Context) submission {
	field := func(name string) string {
		return strings.TrimSpace(c.PostForm(name))
	}

	contactMethod := field("contactMethod")
	if contactMethod == "" {
		// ancien nom de champ encore envoyé par certaines pages
		contactMethod = field("contact_method")
	}

	sub := submission{
		Name:                   field("name"),
		Email:                  field("email"),
		Phone:                  field("phone"),
		Address:                field("address"),
		ServiceType:            field("serviceType"),
		Details:                field("details"),
		PreferredTiming:        field("timing"),
		PreferredContactMethod: contactMethod,
		RawMessage:             field("message"),
		TrafficSource:          field("trafficSource"),
		LandingPage:            field("landingPage"),
		Referrer:               field("referrer"),
	}

	sub.Services = resolveServices(field("services"), sub.ServiceType)
	sub.UtmParams = parseUtmParams(field("utmParams"))

	sub.Message = sub.RawMessage
	if sub.Message == "" {
		sub.Message = synthesizeMessage(sub)
	}

	return sub
}

// resolveServices normalise le champ services, envoyé selon les pages comme
// tableau JSON, comme liste séparée par des virgules, ou pas du tout (seul
// serviceType est alors renseigné).
func resolveServices(servicesRaw, serviceType string) []string {
	services := []string{}

	if servicesRaw != "" {
		var parsed interface{}
		if err := json.Unmarshal([]byte(servicesRaw), &parsed); err != nil {
			services = splitAndTrim(servicesRaw)
		} else if items, ok := parsed.([]interface{}); ok {
			for _, item := range items {
				value := strings.TrimSpace(fmt.Sprint(item))
				if value != "" {
					services = append(services, value)
				}
			}
		}
	}

	if len(services) == 0 && serviceType != "" {
		services = splitAndTrim(serviceType)
	}

	return services
}

func splitAndTrim(raw string) []string {
	out := []string{}
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// parseUtmParams accepte n'importe quel document JSON; un payload invalide est
// stocké comme null, l'attribution ne bloque jamais une soumission.
func parseUtmParams(raw string) datatypes.JSON {
	if raw == "" || !json.Valid([]byte(raw)) {
		return nil
	}
	return datatypes.JSON(raw)
}

// synthesizeMessage construit un message lisible à partir des champs
// structurés quand l'utilisateur n'a rien saisi en texte libre, pour que les
// emails et le dashboard aient toujours un contenu non vide.
func synthesizeMessage(sub submission) string {
	serviceText := strings.Join(sub.Services, ", ")
	if serviceText == "" {
		serviceText = sub.ServiceType
	}
	if serviceText == "" {
		serviceText = "未選択"
	}

	return fmt.Sprintf("【ご依頼内容】%s\n【詳細】%s\n【希望時期】%s\n【連絡方法】%s",
		serviceText,
		orLabel(sub.Details, "なし"),
		orLabel(sub.PreferredTiming, "未選択"),
		orLabel(sub.PreferredContactMethod, "未選択"),
	)
}

func orLabel(value, label string) string {
	if value == "" {
		return label
	}
	return value
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
