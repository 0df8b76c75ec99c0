package services

import (
	"github.com/dmitrijs2005/mhpportal/internal/client/api"
)

// Message strings shown to the user.
const (
	MsgSaved         = "Saved!"
	MsgSaveFailed    = "Failed to save"
	MsgGeneratingPDF = "Generating PDF..."
	MsgPDFGenerated  = "PDF generated successfully!"
	MsgPDFFailed     = "Failed to generate PDF"
	MsgSending       = "Sending..."
	MsgSent          = "Email sent! All reports have been cleared."
	MsgSendFailed    = "Failed to send email"
	MsgUserCreated   = "User created"
	MsgCreateFailed  = "Failed"
	MsgLoginFailed   = "Login failed"
)

// PDFName is the fixed file name of the downloaded report document.
const PDFName = "reports.pdf"

// DetailOr returns the server-provided detail carried by err, or fallback.
func DetailOr(err error, fallback string) string {
	if d, ok := api.Detail(err); ok {
		return d
	}
	return fallback
}
