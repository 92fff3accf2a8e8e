package handlers

import (
	"net/http"

	"github.com/CEMAMI09/EVOQFORMS/internal/models"
	"github.com/CEMAMI09/EVOQFORMS/internal/repository"
	"github.com/CEMAMI09/EVOQFORMS/internal/services"
	"github.com/CEMAMI09/EVOQFORMS/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IntakeForm is the multipart field set of the public intake form. Field
// formats are not validated here; the browser's form validation is the
// operating assumption, not a guarantee.
type IntakeForm struct {
	AccountName     string `form:"accountName"`
	PrimaryEmail    string `form:"primaryEmail"`
	BackupEmail     string `form:"backupEmail"`
	LocationAddress string `form:"locationAddress"`
	KeyContact      string `form:"keyContact"`

	BillingAddress string `form:"billingAddress"`
	CardName       string `form:"cardName"`
	CardNumber     string `form:"cardNumber"`
	CardExpiry     string `form:"cardExpiry"`
	CardCVV        string `form:"cardCVV"`
	BillingZipCode string `form:"billingZipCode"`

	PatientPopulation string `form:"patientPopulation"`
	OtherPatientInfo  string `form:"otherPatientInfo"`

	WifiSSID      string `form:"wifiSSID"`
	WifiPassword  string `form:"wifiPassword"`
	WifiSecurity  string `form:"wifiSecurity"`
	WifiFrequency string `form:"wifiFrequency"`

	EhrSystems string `form:"ehrSystems"`
}

type IntakeHandler struct {
	log     *zap.Logger
	service *services.SubmissionService
	uploads *storage.UploadStore
}

func NewIntakeHandler(log *zap.Logger, service *services.SubmissionService, uploads *storage.UploadStore) *IntakeHandler {
	return &IntakeHandler{log: log, service: service, uploads: uploads}
}

// Submit accepts the public intake form (multipart, one optional logo file)
// and redirects the browser to the confirmation page.
func (h *IntakeHandler) Submit(c *gin.Context) {
	var form IntakeForm
	if err := c.ShouldBind(&form); err != nil {
		h.log.Error("Failed to bind intake form", zap.Error(err))
		c.String(http.StatusBadRequest, "Invalid form data.")
		return
	}

	var logoPath string
	if fileHeader, err := c.FormFile("practiceLogo"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			h.log.Error("Failed to open uploaded logo", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error saving data.")
			return
		}
		defer file.Close()

		logoPath, err = h.uploads.Save(file, fileHeader.Filename)
		if err != nil {
			h.log.Error("Failed to store uploaded logo", zap.Error(err))
			c.String(http.StatusInternalServerError, "Error saving data.")
			return
		}
	}

	submission := &models.IntakeSubmission{
		AccountName:       form.AccountName,
		PrimaryEmail:      form.PrimaryEmail,
		BackupEmail:       form.BackupEmail,
		LocationAddress:   form.LocationAddress,
		KeyContact:        form.KeyContact,
		BillingAddress:    form.BillingAddress,
		CardName:          form.CardName,
		CardNumber:        form.CardNumber,
		CardExpiry:        form.CardExpiry,
		CardCVV:           form.CardCVV,
		BillingZipCode:    form.BillingZipCode,
		PatientPopulation: form.PatientPopulation,
		OtherPatientInfo:  form.OtherPatientInfo,
		WifiSSID:          form.WifiSSID,
		WifiPassword:      form.WifiPassword,
		WifiSecurity:      form.WifiSecurity,
		WifiFrequency:     form.WifiFrequency,
		EhrSystems:        form.EhrSystems,
		PracticeLogoPath:  logoPath,
	}

	if _, err := h.service.SubmitIntake(c.Request.Context(), submission); err != nil {
		c.String(http.StatusInternalServerError, "Error saving data.")
		return
	}

	c.Redirect(http.StatusFound, "/completed.html")
}

// List returns every intake submission, newest first. Sensitive fields are
// returned in full; masking is a dashboard display concern, not an
// access-control boundary.
func (h *IntakeHandler) List(c *gin.Context) {
	submissions, err := repository.ListIntake(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to list intake forms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve data."})
		return
	}
	c.JSON(http.StatusOK, submissions)
}
