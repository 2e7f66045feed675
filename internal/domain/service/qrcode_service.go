package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateReferralQR renders a PNG QR code for the given referral link.
	GenerateReferralQR(link string) ([]byte, error)
}
