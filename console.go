package minibank

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	mainMenu = `
Banking Main Menu:
1. Select Account
2. Open Account
3. Exit
`
	acctMenu = `
Account Menu:
1. Check Balance
2. Deposit
3. Withdraw
4. Exit Account
`
	choicePrompt  = "Enter your choice: "
	invalidAmount = "Invalid input. Please enter a valid positive number."

	maxLineLen = 1024

	// Bounds on amounts accepted by ParseAmount, zero included.
	maxAmountScale  = 8
	maxAmountDigits = 18
)

// Console is an interactive session over a line-oriented reader and writer.
// It holds the account currently selected in the account menu; the account
// itself belongs to the Service's bank.
type Console struct {
	svc     Service
	in      *bufio.Reader
	out     io.Writer
	log     *zerolog.Logger
	current *Account
}

func NewConsole(svc Service, in io.Reader, out io.Writer, log *zerolog.Logger) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Run drives the main menu until the user exits or input ends. Only a
// failure to read input is returned.
func (c *Console) Run() error {
	err := c.mainLoop()
	if errors.Is(err, io.EOF) {
		c.log.Debug().Msg("input closed, ending session")
		return nil
	}
	return err
}

func (c *Console) mainLoop() error {
	for {
		fmt.Fprint(c.out, mainMenu)
		choice, err := c.readLine(choicePrompt)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.selectAccount()
		case "2":
			err = c.openAccount()
		case "3":
			return nil
		default:
			c.report(ErrInvalidChoice{Choice: choice})
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) selectAccount() error {
	line, err := c.readLine("Enter account number: ")
	if err != nil {
		return err
	}
	num, err := ParseAcctNum(line)
	if err != nil {
		c.report(err)
		return nil
	}
	acct, err := c.svc.FindAccount(FindAccountReq{AcctNum: num})
	if err != nil {
		c.report(err)
		return nil
	}

	c.current = acct
	defer func() { c.current = nil }()
	return c.accountLoop()
}

func (c *Console) openAccount() error {
	line, err := c.readLine("Enter account number for the new account: ")
	if err != nil {
		return err
	}
	num, err := ParseAcctNum(line)
	if err != nil {
		c.report(err)
		return nil
	}
	// Existing numbers are refused before any further input is asked for.
	_, err = c.svc.FindAccount(FindAccountReq{AcctNum: num})
	if err == nil {
		c.report(ErrAlreadyExists{AcctNum: num})
		return nil
	}
	if !errors.As(err, &ErrNotFound{}) {
		c.report(err)
		return nil
	}

	bal, err := c.readAmount("Enter initial balance for the new account: ")
	if err != nil {
		return err
	}
	kind, err := c.readLine("Enter account type (Savings or Chequing): ")
	if err != nil {
		return err
	}

	acct, err := c.svc.OpenAccount(OpenAccountReq{
		AcctNum: num,
		Balance: bal,
		Kind:    kind,
	})
	if err != nil {
		c.report(err)
		return nil
	}
	fmt.Fprintf(c.out, "Account %d opened successfully.\n", acct.Num)
	return nil
}

func (c *Console) accountLoop() error {
	for {
		fmt.Fprint(c.out, acctMenu)
		choice, err := c.readLine(choicePrompt)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			bal, err := c.svc.Balance(BalanceReq{AcctNum: c.current.Num})
			if err != nil {
				c.report(err)
				continue
			}
			fmt.Fprintf(c.out, "Current Balance: %s\n", bal)
		case "2":
			amt, err := c.readAmount("Enter amount to deposit: ")
			if err != nil {
				return err
			}
			bal, err := c.svc.Deposit(ChargeReq{AcctNum: c.current.Num, Amount: amt})
			if err != nil {
				c.report(err)
				continue
			}
			fmt.Fprintf(c.out, "Deposited. New Balance: %s\n", bal)
		case "3":
			amt, err := c.readAmount("Enter amount to withdraw: ")
			if err != nil {
				return err
			}
			bal, err := c.svc.Withdraw(ChargeReq{AcctNum: c.current.Num, Amount: amt})
			if err != nil {
				c.report(err)
				continue
			}
			fmt.Fprintf(c.out, "Withdrawn. New Balance: %s\n", bal)
		case "4":
			return nil
		default:
			c.report(ErrInvalidChoice{Choice: choice})
		}
	}
}

// readAmount prompts until a non-negative amount is entered.
func (c *Console) readAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amt, err := ParseAmount(line)
		if err == nil {
			return amt, nil
		}
		c.log.Debug().Err(err).Str("input", line).Msg("rejected amount")
		fmt.Fprintln(c.out, invalidAmount)
	}
}

// readLine re-prompts on lines longer than maxLineLen. A final line without
// a newline is still returned; io.EOF follows on the next call.
func (c *Console) readLine(prompt string) (string, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", err
		}
		if len(line) > maxLineLen {
			c.log.Debug().Int("len", len(line)).Msg("rejected long line")
			c.report(ErrBadRequest{Fields: map[string]string{
				"input": fmt.Sprintf("must be at most %d characters", maxLineLen),
			}})
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

func (c *Console) report(err error) {
	fmt.Fprintf(c.out, "Error: %v\n", err)
}

// ParseAcctNum parses a base-10 account number.
func ParseAcctNum(s string) (int64, error) {
	num, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrBadRequest{Fields: map[string]string{"account number": "must be an integer"}}
	}
	return num, nil
}

// ParseAmount parses a non-negative decimal amount of bounded size.
func ParseAmount(s string) (decimal.Decimal, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrBadRequest{Fields: map[string]string{"amount": "must be a number"}}
	}
	if !amountInRange(amt) {
		return decimal.Zero, ErrBadRequest{Fields: map[string]string{
			"amount": fmt.Sprintf("must have at most %d integer and %d decimal digits", maxAmountDigits, maxAmountScale),
		}}
	}
	if amt.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amt, nil
}

func amountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < -maxAmountScale || exp > maxAmountDigits {
		return false
	}
	return int64(d.NumDigits())+exp <= maxAmountDigits
}
