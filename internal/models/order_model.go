package models

// OTPMode is the two-state switch controlling the V2L verification fields.
type OTPMode string

const (
	OTPModeOff OTPMode = "OFF"
	OTPModeOn  OTPMode = "ON"
)

// OTPMethod selects how the orderer describes their verification flow.
// Meaningful only while OTPMode is ON; the empty value means "not chosen".
type OTPMethod string

const (
	OTPMethodNone       OTPMethod = ""
	OTPMethodBackupCode OTPMethod = "BC"
	OTPMethodEmail      OTPMethod = "EM"
)

// OrderDraft carries the form fields exactly once, from submission to
// dispatch. Drafts are never persisted anywhere.
type OrderDraft struct {
	Username   string    `json:"username"`
	Password   string    `json:"password"`
	OTPMode    OTPMode   `json:"otpMode"`
	OTPMethod  OTPMethod `json:"otpMethod"`
	BackupCode string    `json:"backupCode"`
	Kategori   string    `json:"kategori"`
	Nominal    string    `json:"nominal"`
	Harga      string    `json:"harga"`
}

// FieldRules is the projection of the two linked OTP controls onto the
// dependent form fields: which are visible, which are required, and which
// must be cleared. The page applies it verbatim after every change event.
type FieldRules struct {
	MethodVisible  bool `json:"methodVisible"`
	MethodRequired bool `json:"methodRequired"`
	BackupVisible  bool `json:"backupVisible"`
	BackupRequired bool `json:"backupRequired"`
	BackupCleared  bool `json:"backupCleared"`
	EmailVisible   bool `json:"emailVisible"`
	MethodCleared  bool `json:"methodCleared"`
}
