// Package export writes the ledger out in interchange formats: CSV for
// spreadsheets, JSON matching the data file schema, and YAML.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/DioVale2002/finance-tracker/internal/ledger"
	"github.com/DioVale2002/finance-tracker/internal/model"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	// FormatCSV writes one row per transaction with a header line.
	FormatCSV Format = "csv"
	// FormatJSON writes the same document shape as the data file.
	FormatJSON Format = "json"
	// FormatYAML writes a YAML transaction list.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported export format %q (want csv, json, or yaml)", s)
	}
}

// Write encodes the transactions to w in the given format, preserving
// ledger order.
func Write(w io.Writer, format Format, txns []model.Transaction) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, txns)
	case FormatJSON:
		return writeJSON(w, txns)
	case FormatYAML:
		return writeYAML(w, txns)
	default:
		return fmt.Errorf("unsupported export format %q", string(format))
	}
}

var csvHeader = []string{"date", "description", "type", "category", "amount"}

func writeCSV(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i := range txns {
		row := []string{
			txns[i].Date.Format(ledger.DateLayout),
			txns[i].Description,
			string(txns[i].Type),
			string(txns[i].Category),
			strconv.FormatFloat(txns[i].Amount, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, txns []model.Transaction) error {
	data, err := ledger.MarshalTransactions(txns)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}

	// The data file is compact; exports are for humans and tools alike.
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	pretty.WriteByte('\n')

	_, err = w.Write(pretty.Bytes())
	return err
}

type yamlTransaction struct {
	Date        string  `yaml:"date"`
	Description string  `yaml:"description"`
	Type        string  `yaml:"type"`
	Category    string  `yaml:"category"`
	Amount      float64 `yaml:"amount"`
}

type yamlDocument struct {
	Transactions []yamlTransaction `yaml:"transactions"`
}

func writeYAML(w io.Writer, txns []model.Transaction) error {
	doc := yamlDocument{
		Transactions: make([]yamlTransaction, 0, len(txns)),
	}
	for i := range txns {
		doc.Transactions = append(doc.Transactions, yamlTransaction{
			Date:        txns[i].Date.Format(ledger.DateLayout),
			Description: txns[i].Description,
			Type:        string(txns[i].Type),
			Category:    string(txns[i].Category),
			Amount:      txns[i].Amount,
		})
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return nil
}
