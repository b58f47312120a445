package valutatrade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// This file contains the codecs for the three flat files of the data
// directory. They are plain JSON documents, indented, so that they stay
// human-readable and diff friendly:
//
//	users.json       [{"user_id":1,"username":"alice","hashed_password":"…","salt":"…","registration_date":"…"}]
//	portfolios.json  [{"user_id":1,"wallets":{"USD":{"balance":10}}}]
//	rates.json       {"EUR":{"USD":1.1}}
//
// Domain types never carry json tags for persistence: each codec uses a
// dedicated local struct.

// registration dates written by older tools have no zone and microseconds.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

func parseRegistrationDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid registration date %q", s)
}

// decodeJSON decodes r into v, an empty stream leaves v untouched.
func decodeJSON(r io.Reader, v any) error {
	err := json.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(v)
}

type jaccount struct {
	ID               int    `json:"user_id"`
	Username         string `json:"username"`
	HashedPassword   string `json:"hashed_password"`
	Salt             string `json:"salt"`
	RegistrationDate string `json:"registration_date"`
}

// DecodeAccounts reads an account table.
func DecodeAccounts(r io.Reader) ([]*Account, error) {
	var list []jaccount
	if err := decodeJSON(r, &list); err != nil {
		return nil, fmt.Errorf("format error in account table: %w", err)
	}
	accounts := make([]*Account, 0, len(list))
	seen := make(map[int]bool, len(list))
	for _, ja := range list {
		if seen[ja.ID] {
			return nil, fmt.Errorf("format error in account table: user_id %d is defined twice", ja.ID)
		}
		seen[ja.ID] = true
		on, err := parseRegistrationDate(ja.RegistrationDate)
		if err != nil {
			return nil, fmt.Errorf("format error in account table: user_id %d: %w", ja.ID, err)
		}
		a, err := restoreAccount(ja.ID, ja.Username, ja.HashedPassword, ja.Salt, on)
		if err != nil {
			return nil, fmt.Errorf("format error in account table: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// EncodeAccounts writes an account table.
func EncodeAccounts(w io.Writer, accounts []*Account) error {
	list := make([]jaccount, 0, len(accounts))
	for _, a := range accounts {
		list = append(list, jaccount{
			ID:               a.id,
			Username:         a.name,
			HashedPassword:   a.passwordHash,
			Salt:             a.salt,
			RegistrationDate: a.registered.Format(time.RFC3339Nano),
		})
	}
	if err := encodeJSON(w, list); err != nil {
		return fmt.Errorf("persist error: cannot write account table: %w", err)
	}
	return nil
}

type jwallet struct {
	Balance float64 `json:"balance"`
}

type jportfolio struct {
	ID      int                `json:"user_id"`
	Wallets map[string]jwallet `json:"wallets"`
}

// DecodePortfolios reads a portfolio table.
func DecodePortfolios(r io.Reader) ([]*Portfolio, error) {
	var list []jportfolio
	if err := decodeJSON(r, &list); err != nil {
		return nil, fmt.Errorf("format error in portfolio table: %w", err)
	}
	portfolios := make([]*Portfolio, 0, len(list))
	for _, jp := range list {
		p := NewPortfolio(jp.ID)
		for code, jw := range jp.Wallets {
			w, err := NewWallet(code, jw.Balance)
			if err != nil {
				return nil, fmt.Errorf("format error in portfolio of user_id %d: %w", jp.ID, err)
			}
			if err := p.addWallet(w); err != nil {
				return nil, fmt.Errorf("format error in portfolio of user_id %d: %w", jp.ID, err)
			}
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, nil
}

// EncodePortfolios writes a portfolio table.
func EncodePortfolios(w io.Writer, portfolios []*Portfolio) error {
	list := make([]jportfolio, 0, len(portfolios))
	for _, p := range portfolios {
		jp := jportfolio{ID: p.accountID, Wallets: make(map[string]jwallet, len(p.wallets))}
		for code, wallet := range p.wallets {
			jp.Wallets[code] = jwallet{Balance: wallet.balance}
		}
		list = append(list, jp)
	}
	if err := encodeJSON(w, list); err != nil {
		return fmt.Errorf("persist error: cannot write portfolio table: %w", err)
	}
	return nil
}

// DecodeRates reads a rate table.
func DecodeRates(r io.Reader) (RateTable, error) {
	t := make(RateTable)
	if err := decodeJSON(r, &t); err != nil {
		return nil, fmt.Errorf("format error in rate table: %w", err)
	}
	// null decodes to a nil table, and {"EUR": null} to a nil quote map.
	if t == nil {
		t = make(RateTable)
	}
	for base, quotes := range t {
		if quotes == nil {
			delete(t, base)
		}
	}
	return t, nil
}

// EncodeRates writes a rate table.
func EncodeRates(w io.Writer, t RateTable) error {
	if err := encodeJSON(w, t); err != nil {
		return fmt.Errorf("persist error: cannot write rate table: %w", err)
	}
	return nil
}
