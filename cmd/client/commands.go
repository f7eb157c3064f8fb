package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-countries/internal/adapter"
)

var (
	errNoCommand      = errors.New("no command given, expected one of: ping, list, get, health, version")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage: get <alpha2>")
)

// run executes one client command against the API and prints the JSON
// result to out.
//
//	ping
//	list [region ...]
//	get <alpha2>
//	health
//	version
func run(ctx context.Context, countries adapter.CountriesAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errNoCommand
	}

	var (
		result any
		err    error
	)

	switch cmd, params := args[0], args[1:]; cmd {
	case "ping":
		if err = countries.Ping(ctx); err == nil {
			result = map[string]string{"status": "ok"}
		}
	case "list":
		result, err = countries.ListCountries(ctx, params)
	case "get":
		if len(params) != 1 {
			return errUsage
		}
		result, err = countries.GetCountry(ctx, params[0])
	case "health":
		// the report is printed even when the server is unavailable
		var health any
		health, err = countries.Health(ctx)
		if printErr := printJSON(out, health); printErr != nil {
			return printErr
		}
		return err
	case "version":
		result, err = countries.Version(ctx)
	default:
		return fmt.Errorf("%w: %q", errUnknownCommand, cmd)
	}

	if err != nil {
		return err
	}

	return printJSON(out, result)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}

	return nil
}
