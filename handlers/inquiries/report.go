package inquiries

import (
	"fmt"
	"strings"
)

// submissionReport agrège l'issue de chaque effet de bord best-effort d'une
// soumission (uploads, notifications) afin qu'une seule ligne de log montre
// ce qui a été ignoré. Aucun de ces échecs ne fait échouer la requête.
type submissionReport struct {
	InquiryID        uint
	LegacySchema     bool
	Uploaded         int
	UploadFailures   []string
	AdminNotifyErr   error
	AutoReplyErr     error
	AutoReplySkipped bool
}

func (r *submissionReport) addUploadFailure(filename string, err error) {
	r.UploadFailures = append(r.UploadFailures, fmt.Sprintf("%s: %v", filename, err))
}

func (r *submissionReport) summary() string {
	parts := []string{fmt.Sprintf("inquiry %d accepted", r.InquiryID)}

	if r.LegacySchema {
		parts = append(parts, "legacy schema")
	}

	parts = append(parts, fmt.Sprintf("%d photo(s) stored", r.Uploaded))
	if len(r.UploadFailures) > 0 {
		parts = append(parts, fmt.Sprintf("%d upload(s) skipped: %s", len(r.UploadFailures), strings.Join(r.UploadFailures, "; ")))
	}

	if r.AdminNotifyErr != nil {
		parts = append(parts, fmt.Sprintf("admin notification skipped: %v", r.AdminNotifyErr))
	} else {
		parts = append(parts, "admin notification sent")
	}

	switch {
	case r.AutoReplySkipped:
		parts = append(parts, "auto-reply skipped: no email")
	case r.AutoReplyErr != nil:
		parts = append(parts, fmt.Sprintf("auto-reply skipped: %v", r.AutoReplyErr))
	default:
		parts = append(parts, "auto-reply sent")
	}

	return strings.Join(parts, ", ")
}
