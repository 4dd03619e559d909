package main

import (
	"bankist/internal/client"
	"bankist/internal/models/money"
	bank "bankist/internal/services"
	"bankist/pkg/dto"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
)

const usage = `usage: bankist-cli [-addr URL] -user USERNAME -pin PIN COMMAND

commands:
  summary
  movements [-sort]
  transfer TO AMOUNT
  loan AMOUNT
  close
  stats
  statement pdf|xlsx FILE
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("bankist-cli", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
	}

	addr := fs.String("addr", "http://localhost:8080", "API base URL")
	username := fs.String("user", "", "username")
	pin := fs.String("pin", "", "pin")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("no command")
	}

	ctx := context.Background()
	c := client.New(*addr)

	command, rest := fs.Arg(0), fs.Args()[1:]

	summary, err := c.Login(ctx, *username, *pin)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	switch command {
	case "summary":
		return printJSON(summary)
	case "movements":
		mfs := flag.NewFlagSet("movements", flag.ContinueOnError)
		sorted := mfs.Bool("sort", false, "sort ascending")
		if err := mfs.Parse(rest); err != nil {
			return err
		}

		rows, err := c.Movements(ctx, *sorted)
		if err != nil {
			return err
		}
		return printMovements(rows)
	case "transfer":
		if len(rest) != 2 {
			return errors.New("transfer needs TO and AMOUNT")
		}

		amount, err := bank.ParseAmount(rest[1])
		if err != nil {
			return err
		}

		summary, err := c.Transfer(ctx, rest[0], money.New(amount))
		if err != nil {
			return err
		}
		return printJSON(summary)
	case "loan":
		if len(rest) != 1 {
			return errors.New("loan needs AMOUNT")
		}

		amount, err := bank.ParseAmount(rest[0])
		if err != nil {
			return err
		}

		summary, err := c.Loan(ctx, money.New(amount))
		if err != nil {
			return err
		}
		return printJSON(summary)
	case "stats":
		stats, err := c.Stats(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)
	case "close":
		if err := c.Close(ctx, *username, *pin); err != nil {
			return err
		}
		fmt.Printf("account %s closed\n", *username)
		return nil
	case "statement":
		if len(rest) != 2 {
			return errors.New("statement needs FORMAT and FILE")
		}
		return saveStatement(ctx, c, rest[0], rest[1])
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func saveStatement(ctx context.Context, c *client.Client, format, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := c.Statement(ctx, format, file); err != nil {
		return err
	}

	fmt.Printf("statement saved to %s\n", path)

	return nil
}

func printMovements(rows []dto.Movement) error {
	for _, row := range rows {
		fmt.Printf("%3d %-10s %12s\n", row.Index, row.Type, row.Amount.Euro())
	}

	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))

	return nil
}
