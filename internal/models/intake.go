package models

// IntakeSubmission is one practice-onboarding form submission. Rows are
// inserted once and never updated or deleted; there are no endpoints for
// either. Payment and wifi fields are stored verbatim — masking happens in
// the dashboard, not here.
//
// Column names are pinned to the schema of the existing data.db files, which
// predate this server.
type IntakeSubmission struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AccountName     string `gorm:"column:accountName" json:"accountName"`
	PrimaryEmail    string `gorm:"column:primaryEmail" json:"primaryEmail"`
	BackupEmail     string `gorm:"column:backupEmail" json:"backupEmail"`
	LocationAddress string `gorm:"column:locationAddress" json:"locationAddress"`
	KeyContact      string `gorm:"column:keyContact" json:"keyContact"`

	BillingAddress string `gorm:"column:billingAddress" json:"billingAddress"`
	CardName       string `gorm:"column:cardName" json:"cardName"`
	CardNumber     string `gorm:"column:cardNumber" json:"cardNumber"`
	CardExpiry     string `gorm:"column:cardExpiry" json:"cardExpiry"`
	CardCVV        string `gorm:"column:cardCVV" json:"cardCVV"`
	BillingZipCode string `gorm:"column:billingZipCode" json:"billingZipCode"`

	PatientPopulation string `gorm:"column:patientPopulation" json:"patientPopulation"`
	OtherPatientInfo  string `gorm:"column:otherPatientInfo" json:"otherPatientInfo"`

	WifiSSID      string `gorm:"column:wifiSSID" json:"wifiSSID"`
	WifiPassword  string `gorm:"column:wifiPassword" json:"wifiPassword"`
	WifiSecurity  string `gorm:"column:wifiSecurity" json:"wifiSecurity"`
	WifiFrequency string `gorm:"column:wifiFrequency" json:"wifiFrequency"`

	EhrSystems       string `gorm:"column:ehrSystems" json:"ehrSystems"`
	PracticeLogoPath string `gorm:"column:practiceLogoPath" json:"practiceLogoPath"`
}

// TableName keeps the table name used by the original deployment.
func (IntakeSubmission) TableName() string {
	return "intake_form"
}
