// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// addressAbbreviations maps lowercase Turkish address words and their common
// short forms to the abbreviation used in normalized addresses. Keys are
// already folded (ı written as i).
var addressAbbreviations = map[string]string{
	"mahallesi": "mah",
	"mahalle":   "mah",
	"mah":       "mah",
	"mh":        "mah",
	"caddesi":   "cad",
	"cadde":     "cad",
	"cad":       "cad",
	"cd":        "cad",
	"sokaği":    "sok",
	"sokagi":    "sok",
	"sokak":     "sok",
	"sok":       "sok",
	"sk":        "sok",
	"bulvari":   "blv",
	"bulvar":    "blv",
	"blv":       "blv",
	"bulv":      "blv",
}

var (
	buildingNoPattern = regexp.MustCompile(`No:\s*(\d+)`)
	unitNoPattern     = regexp.MustCompile(`D:\s*(\d+)`)
)

// NormalizeAddress builds the matching key for an address: the non-empty
// components joined by single spaces, lower-cased with Turkish casing rules
// and with suffix words collapsed to their abbreviations.
//
// "Moda Mahallesi", "MODA MAH." and "moda mah" all contribute "moda mah".
//
// Dotless ı is folded to i after lowering, so "ISTANBUL", "Istanbul" and
// "İstanbul" produce the same key regardless of the keyboard layout used.
func NormalizeAddress(c models.AddressComponents) string {
	parts := make([]string, 0, 6)
	for _, part := range []string{c.Mahalle, c.CaddeSokak, c.BinaNo, c.DaireNo, c.Ilce, c.Il} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	words := strings.Fields(foldTurkish(strings.Join(parts, " ")))
	for i, word := range words {
		if abbr, ok := addressAbbreviations[strings.TrimRight(word, ".")]; ok {
			words[i] = abbr
		}
	}

	return strings.Join(words, " ")
}

// foldTurkish lower-cases s with Turkish rules and writes dotless ı as i.
func foldTurkish(s string) string {
	// cases.Caser keeps state between calls and must not be shared.
	return strings.ReplaceAll(cases.Lower(language.Turkish).String(s), "ı", "i")
}

// GenerateFullAddress renders components as a display address:
//
//	{mahalle} {cadde_sokak} No:{bina_no}[ D:{daire_no}], {ilce}/{il}
//
// The unit segment is omitted when DaireNo is empty.
func GenerateFullAddress(c models.AddressComponents) string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(c.Mahalle))
	b.WriteString(" ")
	b.WriteString(strings.TrimSpace(c.CaddeSokak))
	b.WriteString(" No:")
	b.WriteString(strings.TrimSpace(c.BinaNo))
	if unit := strings.TrimSpace(c.DaireNo); unit != "" {
		b.WriteString(" D:")
		b.WriteString(unit)
	}
	b.WriteString(", ")
	b.WriteString(strings.TrimSpace(c.Ilce))
	b.WriteString("/")
	b.WriteString(strings.TrimSpace(c.Il))

	return b.String()
}

// ParseAddress is a best-effort, lossy inverse of GenerateFullAddress.
//
// The address must contain a comma separating the street part from the
// "district/province" part, and that part must contain a slash; otherwise an
// empty PartialAddress is returned. Building and unit numbers are read from
// "No:" and "D:". Neighborhood and street are only split when the street part
// contains a neighborhood suffix word ("Mahallesi", "Mah."). Anything not
// recognized stays nil.
func ParseAddress(fullAddress string) models.PartialAddress {
	var out models.PartialAddress

	streetPart, locationPart, ok := strings.Cut(fullAddress, ",")
	if !ok {
		return out
	}
	district, province, ok := strings.Cut(locationPart, "/")
	if !ok {
		return out
	}

	out.Ilce = nonEmptyPtr(district)
	out.Il = nonEmptyPtr(province)

	if m := buildingNoPattern.FindStringSubmatch(streetPart); m != nil {
		out.BinaNo = nonEmptyPtr(m[1])
	}
	if m := unitNoPattern.FindStringSubmatch(streetPart); m != nil {
		out.DaireNo = nonEmptyPtr(m[1])
	}

	head := streetPart
	if idx := strings.Index(head, "No:"); idx >= 0 {
		head = head[:idx]
	}
	words := strings.Fields(head)
	for i, word := range words {
		if addressAbbreviations[strings.TrimRight(foldTurkish(word), ".")] != "mah" {
			continue
		}
		if i+1 < len(words) {
			out.Mahalle = nonEmptyPtr(strings.Join(words[:i+1], " "))
			out.CaddeSokak = nonEmptyPtr(strings.Join(words[i+1:], " "))
		}
		break
	}

	return out
}

// IsValidAddress reports whether every required component is present.
// DaireNo is optional.
func IsValidAddress(c models.AddressComponents) bool {
	for _, part := range []string{c.Mahalle, c.CaddeSokak, c.BinaNo, c.Ilce, c.Il} {
		if strings.TrimSpace(part) == "" {
			return false
		}
	}
	return true
}

// AddressesMatch reports whether a and b refer to the same unit.
func AddressesMatch(a, b models.AddressComponents) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

func nonEmptyPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
