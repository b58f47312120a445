package valutatrade

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Filenames of the tables inside a data directory.
const (
	AccountsFilename   = "users.json"
	PortfoliosFilename = "portfolios.json"
	RatesFilename      = "rates.json"
)

// dataDir reads and writes whole JSON tables in a directory. Missing files
// read as empty tables, the directory is created on the first write.
//
// Every call reads or rewrites a whole file. Two processes writing the same
// directory at the same time can lose updates.
type dataDir string

func (d dataDir) path(name string) string { return filepath.Join(string(d), name) }

// read opens name and decodes it with decode. A missing file is not an error.
func (d dataDir) read(name string, decode func(io.Reader) error) error {
	f, err := os.Open(d.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load error: cannot open %q: %w", d.path(name), err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("load error in %q: %w", d.path(name), err)
	}
	return nil
}

// write encodes into a temporary file then renames it over name, so that a
// failed write never leaves a truncated table behind.
func (d dataDir) write(name string, encode func(io.Writer) error) error {
	if err := os.MkdirAll(string(d), 0755); err != nil {
		return fmt.Errorf("persist error: cannot create %q: %w", string(d), err)
	}
	tmp, err := os.CreateTemp(string(d), name+".*")
	if err != nil {
		return fmt.Errorf("persist error: cannot create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), d.path(name)); err != nil {
		return fmt.Errorf("persist error: cannot replace %q: %w", d.path(name), err)
	}
	return nil
}

// FileStores groups the three file backed stores of a data directory.
type FileStores struct {
	Accounts   *AccountFile
	Portfolios *PortfolioFile
	Rates      *RateFile
}

// OpenFileStores returns the stores kept in dir.
func OpenFileStores(dir string) FileStores {
	d := dataDir(dir)
	return FileStores{
		Accounts:   &AccountFile{dir: d},
		Portfolios: &PortfolioFile{dir: d},
		Rates:      &RateFile{dir: d},
	}
}

// AccountFile is the AccountStore kept in users.json.
type AccountFile struct{ dir dataDir }

// Accounts implements AccountStore.
func (s *AccountFile) Accounts() (accounts []*Account, err error) {
	err = s.dir.read(AccountsFilename, func(r io.Reader) (err error) {
		accounts, err = DecodeAccounts(r)
		return err
	})
	return accounts, err
}

// FindByName implements AccountStore.
func (s *AccountFile) FindByName(name string) (*Account, error) {
	accounts, err := s.Accounts()
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.name == name {
			return a, nil
		}
	}
	return nil, nil
}

// Append implements AccountStore.
func (s *AccountFile) Append(a *Account) error {
	accounts, err := s.Accounts()
	if err != nil {
		return err
	}
	return s.SaveAll(append(accounts, a))
}

// SaveAll implements AccountStore.
func (s *AccountFile) SaveAll(accounts []*Account) error {
	return s.dir.write(AccountsFilename, func(w io.Writer) error { return EncodeAccounts(w, accounts) })
}

// PortfolioFile is the PortfolioStore kept in portfolios.json.
type PortfolioFile struct{ dir dataDir }

// Portfolios implements PortfolioStore.
func (s *PortfolioFile) Portfolios() (portfolios []*Portfolio, err error) {
	err = s.dir.read(PortfoliosFilename, func(r io.Reader) (err error) {
		portfolios, err = DecodePortfolios(r)
		return err
	})
	return portfolios, err
}

// FindByAccount implements PortfolioStore.
func (s *PortfolioFile) FindByAccount(accountID int) (*Portfolio, error) {
	portfolios, err := s.Portfolios()
	if err != nil {
		return nil, err
	}
	for _, p := range portfolios {
		if p.accountID == accountID {
			return p, nil
		}
	}
	return nil, nil
}

// SaveAll implements PortfolioStore.
func (s *PortfolioFile) SaveAll(portfolios []*Portfolio) error {
	return s.dir.write(PortfoliosFilename, func(w io.Writer) error { return EncodePortfolios(w, portfolios) })
}

// RateFile is the RateStore kept in rates.json.
type RateFile struct{ dir dataDir }

// Rates implements RateStore.
func (s *RateFile) Rates() (RateTable, error) {
	t := make(RateTable)
	err := s.dir.read(RatesFilename, func(r io.Reader) (err error) {
		t, err = DecodeRates(r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// SaveRates implements RateWriter.
func (s *RateFile) SaveRates(t RateTable) error {
	return s.dir.write(RatesFilename, func(w io.Writer) error { return EncodeRates(w, t) })
}
