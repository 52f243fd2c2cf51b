package minibank

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	NodeID   int64 `yaml:"node_id"`
	Defaults struct {
		MinBalance     string `yaml:"min_balance"`
		OverdraftLimit string `yaml:"overdraft_limit"`
	} `yaml:"defaults"`
	Seed      []SeedAccount `yaml:"seed"`
	Statement struct {
		Path string `yaml:"path"`
	} `yaml:"statement"`
}

type SeedAccount struct {
	Num     int64  `yaml:"num"`
	Kind    string `yaml:"kind"`
	Balance string `yaml:"balance"`
	Limit   string `yaml:"limit"`
}

func LoadConfig(path string) (*Config, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fl.Close()
	return DecodeConfig(fl)
}

func DecodeConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BankDefaults parses the open-account defaults. Unset values fall back to
// a 2000 minimum balance and a 5000 overdraft limit.
func (c *Config) BankDefaults() (Defaults, error) {
	d := Defaults{
		MinBalance:     decimal.NewFromInt(2000),
		OverdraftLimit: decimal.NewFromInt(5000),
	}
	var err error
	if c.Defaults.MinBalance != "" {
		if d.MinBalance, err = decimal.NewFromString(c.Defaults.MinBalance); err != nil {
			return d, fmt.Errorf("defaults.min_balance: %w", err)
		}
	}
	if c.Defaults.OverdraftLimit != "" {
		if d.OverdraftLimit, err = decimal.NewFromString(c.Defaults.OverdraftLimit); err != nil {
			return d, fmt.Errorf("defaults.overdraft_limit: %w", err)
		}
	}
	if d.MinBalance.IsNegative() || d.OverdraftLimit.IsNegative() {
		return d, fmt.Errorf("defaults: %w", ErrInvalidAmount)
	}
	return d, nil
}

// SeedAccounts builds the configured seed accounts. Unlike OpenAccount,
// seeds may be of any kind, including Basic. A Savings or Chequing seed
// without a limit gets the same default as an opened account.
func (c *Config) SeedAccounts() ([]*Account, error) {
	d, err := c.BankDefaults()
	if err != nil {
		return nil, err
	}
	accts := make([]*Account, 0, len(c.Seed))
	for _, s := range c.Seed {
		bal, err := decimal.NewFromString(s.Balance)
		if err != nil {
			return nil, fmt.Errorf("seed %d balance: %w", s.Num, err)
		}
		var lim *decimal.Decimal
		if s.Limit != "" {
			l, err := decimal.NewFromString(s.Limit)
			if err != nil {
				return nil, fmt.Errorf("seed %d limit: %w", s.Num, err)
			}
			if l.IsNegative() {
				return nil, fmt.Errorf("seed %d limit: %w", s.Num, ErrInvalidAmount)
			}
			lim = &l
		}

		switch k := strings.TrimSpace(s.Kind); {
		case k == "" || strings.EqualFold(k, "basic"):
			accts = append(accts, NewBasicAccount(s.Num, bal))
		default:
			kind, err := ParseKind(k)
			if err != nil {
				return nil, fmt.Errorf("seed %d: %w", s.Num, err)
			}
			if kind == KindSavings {
				if lim == nil {
					lim = &d.MinBalance
				}
				accts = append(accts, NewSavingsAccount(s.Num, bal, *lim))
			} else {
				if lim == nil {
					lim = &d.OverdraftLimit
				}
				accts = append(accts, NewChequingAccount(s.Num, bal, *lim))
			}
		}
	}
	return accts, nil
}

// NewBankFromConfig seeds a Bank with the configured accounts and defaults.
func NewBankFromConfig(c *Config) (*Bank, error) {
	d, err := c.BankDefaults()
	if err != nil {
		return nil, err
	}
	seed, err := c.SeedAccounts()
	if err != nil {
		return nil, err
	}
	return NewBank(d, seed...)
}
