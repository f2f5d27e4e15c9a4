package model

import (
	"encoding/json"
	"time"
)

const (
	VerificationNone     = "none"
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Verification is the canonical identity-verification state of a
// participant. The backend is mid-migration and still answers with one of
// two shapes, so decoding normalizes both here and nothing past this
// boundary ever branches on the wire format.
//
// Current shape:
//
//	{"status": "approved", "document": {"type": "passport"}, "verifiedAt": "..."}
//
// Legacy shape (flat, snake_case):
//
//	{"kyc_status": "approved", "kyc_document_type": "passport", "kyc_verified_at": "..."}
type Verification struct {
	Status       string     `json:"status"`
	DocumentType string     `json:"documentType,omitempty"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
}

func (v Verification) Verified() bool {
	return v.Status == VerificationApproved
}

func (v *Verification) UnmarshalJSON(data []byte) error {
	var current struct {
		Status   string `json:"status"`
		Document *struct {
			Type string `json:"type"`
		} `json:"document"`
		VerifiedAt *time.Time `json:"verifiedAt"`
	}
	if err := json.Unmarshal(data, &current); err != nil {
		return err
	}

	if current.Status != "" {
		v.Status = current.Status
		if current.Document != nil {
			v.DocumentType = current.Document.Type
		}
		v.VerifiedAt = current.VerifiedAt
		return nil
	}

	var legacy struct {
		Status       string     `json:"kyc_status"`
		DocumentType string     `json:"kyc_document_type"`
		VerifiedAt   *time.Time `json:"kyc_verified_at"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}

	if legacy.Status == "" {
		v.Status = VerificationNone
		return nil
	}

	v.Status = legacy.Status
	v.DocumentType = legacy.DocumentType
	v.VerifiedAt = legacy.VerifiedAt
	return nil
}
