// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package parser recognizes rental contract fields in free Turkish text.
//
// Parsing is heuristic: the text is scanned for known labels ("Kiracı:",
// "Kira Bedeli:", "T.C. Kimlik No:" ...) and the text following each label,
// up to the next label or the end of the line, is taken as its value. TC,
// phone, e-mail and address values are attributed to the party whose label
// most recently preceded them. Values that cannot be recognized are left
// unset, never guessed.
package parser

import (
	"sort"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"github.com/MKhiriev/go-emlak-keeper/models"
)

type party int

const (
	partyNone party = iota
	partyOwner
	partyTenant
	partyProperty
)

type event struct {
	kind  fieldKind
	start int
	end   int
	value string
}

// ParseContractFromText extracts whatever contract fields it can recognize
// from text. It never fails; unrecognized text yields an empty result.
func ParseContractFromText(text string) models.ParsedContractData {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	b := newBuilder()
	events := scan(text)
	ctx := partyNone

	for i, ev := range events {
		value := ev.value
		if value == "" {
			value = valueAfter(text, ev.end, nextStart(events, i, len(text)))
		}

		switch ev.kind {
		case kindOwnerHeader:
			ctx = partyOwner
		case kindTenantHeader:
			ctx = partyTenant
		case kindPropertyHeader:
			ctx = partyProperty
		case kindOwnerName:
			ctx = partyOwner
			b.setName(partyOwner, value)
		case kindTenantName:
			ctx = partyTenant
			b.setName(partyTenant, value)
		case kindPartyName:
			if ctx == partyOwner || ctx == partyTenant {
				b.setName(ctx, value)
			}
		case kindTC:
			if tc := tcValuePattern.FindString(value); tc != "" {
				b.setTC(ctx, tc)
			}
		case kindPhone:
			if phone := phoneValuePattern.FindString(value); phone != "" && len(utils.NormalizePhone(phone)) == 10 {
				b.setPhone(ctx, strings.TrimSpace(phone))
			}
		case kindEmail:
			if utils.IsValidEmail(value) {
				b.setEmail(ctx, value)
			}
		case kindIBAN:
			set(&b.owner.IBAN, utils.NormalizeIBAN(value))
		case kindAddress:
			switch ctx {
			case partyTenant:
				set(&b.tenant.Address, cleanText(value))
			case partyOwner:
				set(&b.owner.Address, cleanText(value))
			default:
				b.setPropertyAddress(value)
			}
		case kindPropertyAddress:
			ctx = partyProperty
			b.setPropertyAddress(value)
		case kindMahalle:
			set(&b.property.Mahalle, cleanText(value))
		case kindCaddeSokak:
			set(&b.property.CaddeSokak, cleanText(value))
		case kindBinaNo:
			set(&b.property.BinaNo, tokenValuePattern.FindString(strings.TrimSpace(value)))
		case kindDaireNo:
			set(&b.property.DaireNo, tokenValuePattern.FindString(strings.TrimSpace(value)))
		case kindIlce:
			set(&b.property.Ilce, cleanText(value))
		case kindIl:
			set(&b.property.Il, cleanText(value))
		case kindUsePurpose:
			set(&b.property.UsePurpose, cleanText(value))
		case kindRent:
			setAmount(&b.terms.RentAmount, value)
		case kindDeposit:
			setAmount(&b.terms.Deposit, value)
		case kindStartDate:
			setDate(&b.terms.StartDate, value)
		case kindEndDate:
			setDate(&b.terms.EndDate, value)
		case kindPaymentDay:
			setDay(&b.terms.PaymentDay, value)
		}
	}

	return b.result()
}

// scan finds every label occurrence, ordered by position. Where labels
// overlap the earliest, then longest, wins.
func scan(text string) []event {
	var found []event
	for _, l := range labels {
		for _, m := range l.re.FindAllStringSubmatchIndex(text, -1) {
			ev := event{kind: l.kind, start: m[2], end: m[3]}
			if l.inline {
				ev.value = text[m[4]:m[5]]
			}
			found = append(found, ev)
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].end > found[j].end
	})

	events := found[:0]
	lastEnd := -1
	for _, ev := range found {
		if ev.start < lastEnd {
			continue
		}
		events = append(events, ev)
		lastEnd = ev.end
	}
	return events
}

func nextStart(events []event, i, fallback int) int {
	if i+1 < len(events) {
		return events[i+1].start
	}
	return fallback
}

// valueAfter returns the text between a label and the next label or line
// break. A label alone on its line takes its value from the following line.
func valueAfter(text string, from, limit int) string {
	if from >= limit {
		return ""
	}
	segment := text[from:limit]

	line, rest, hasBreak := strings.Cut(segment, "\n")
	if strings.TrimSpace(line) != "" || !hasBreak {
		return strings.TrimSpace(line)
	}
	next, _, _ := strings.Cut(rest, "\n")
	return strings.TrimSpace(next)
}

func cleanText(value string) string {
	value = strings.Join(strings.Fields(value), " ")
	return strings.Trim(value, " .,;:-")
}

func cleanName(value string) string {
	name := cleanText(nameValuePattern.FindString(strings.TrimSpace(value)))
	letters := 0
	for _, r := range name {
		if r != ' ' && r != '.' && r != '\'' && r != '-' {
			letters++
		}
	}
	if letters < 2 || len([]rune(name)) > 80 {
		return ""
	}
	return name
}

func set(dst **string, value string) {
	if *dst != nil || value == "" {
		return
	}
	*dst = &value
}

func setAmount(dst **float64, value string) {
	if *dst != nil {
		return
	}
	raw := strings.TrimRight(amountValuePattern.FindString(value), ".,")
	if amount, ok := utils.ParseTurkishAmount(raw); ok && amount > 0 {
		*dst = &amount
	}
}

func setDate(dst **string, value string) {
	set(dst, utils.ConvertDateFormat(dateValuePattern.FindString(value)))
}

func setDay(dst **int, value string) {
	if *dst != nil {
		return
	}
	day, err := strconv.Atoi(dayValuePattern.FindString(value))
	if err != nil || day < 1 || day > 31 {
		return
	}
	*dst = &day
}
