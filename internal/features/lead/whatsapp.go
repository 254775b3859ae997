package lead

import (
	"fmt"
	"net/url"
	"strings"

	"go-estate-crm/internal/common/models"
	"go-estate-crm/pkg/utils"
)

const (
	whatsAppBase    = "https://wa.me/"
	fallbackProject = "عقاراتنا"
)

// Greeting is the Arabic opener sent to a lead on WhatsApp.
func Greeting(l models.Lead) string {
	project := l.ProjectName
	if project == "" {
		project = fallbackProject
	}
	return fmt.Sprintf("أهلاً %s، أنا أتواصل معك بخصوص استفسارك عن مشروع %s.", l.Name, project)
}

// WhatsAppLink builds the wa.me deep link for a lead. The text is encoded the
// way browsers encode a URI component, so spaces become %20.
func WhatsAppLink(l models.Lead, region string) string {
	text := strings.ReplaceAll(url.QueryEscape(Greeting(l)), "+", "%20")
	return whatsAppBase + utils.PhoneDigits(l.Phone, region) + "?text=" + text
}
