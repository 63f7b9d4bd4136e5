// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Owner is a property owner as persisted. The national ID is never stored in
// plaintext: TCEncrypted holds the "iv:ciphertext" form and TCHash the
// deterministic lookup digest used for find-or-create.
type Owner struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	TCEncrypted   string    `json:"-"`
	TCHash        string    `json:"-"`
	IBANEncrypted *string   `json:"-"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Tenant is a tenant as persisted. Address is informational free text and is
// never used as a matching key.
type Tenant struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	TCEncrypted string    `json:"-"`
	TCHash      string    `json:"-"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Address     *string   `json:"address,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// RevealedIdentity carries decrypted identity fields for a single read.
// A field that could not be decrypted is left nil and listed in Denied.
type RevealedIdentity struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	TC     *string  `json:"tc,omitempty"`
	IBAN   *string  `json:"iban,omitempty"`
	Denied []string `json:"denied,omitempty"`
}
