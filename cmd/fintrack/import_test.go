package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/DioVale2002/finance-tracker/internal/ledger"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample OFX file for testing.
const testOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>JAN01
<NAME>STARBUCKS
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>1500.00
<FITID>JAN02
<NAME>PAYROLL ACME CORP
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1474.50
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

// useTempLedger points the commands at a throwaway data file.
func useTempLedger(t *testing.T) string {
	t.Helper()
	dataFile := filepath.Join(t.TempDir(), "finance_data.json")
	viper.Set("data.file", dataFile)
	t.Cleanup(func() { viper.Set("data.file", "") })
	return dataFile
}

func writeOFXFixture(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(testOFX), 0644))
	return path
}

func TestImport_AddsTransactions(t *testing.T) {
	dataFile := useTempLedger(t)
	ofxFile := writeOFXFixture(t, t.TempDir(), "jan2024.qfx")

	cmd := importCmd()
	cmd.SetArgs([]string{ofxFile})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Imported 2 transactions")

	store := ledger.New(dataFile)
	require.NoError(t, store.Restore())
	require.Equal(t, 2, store.Len())

	txn, ok := store.At(0)
	require.True(t, ok)
	assert.Equal(t, "STARBUCKS", txn.Description)
	assert.InDelta(t, 25.50, txn.Amount, 1e-9)
}

func TestImport_Rerun_SkipsDuplicates(t *testing.T) {
	dataFile := useTempLedger(t)
	dir := t.TempDir()
	ofxFile := writeOFXFixture(t, dir, "jan2024.qfx")

	first := importCmd()
	first.SetArgs([]string{ofxFile})
	first.SetOut(&bytes.Buffer{})
	require.NoError(t, first.Execute())

	second := importCmd()
	second.SetArgs([]string{ofxFile})
	var buf bytes.Buffer
	second.SetOut(&buf)
	require.NoError(t, second.Execute())

	assert.Contains(t, buf.String(), "Imported 0 transactions (2 duplicates skipped)")

	store := ledger.New(dataFile)
	require.NoError(t, store.Restore())
	assert.Equal(t, 2, store.Len())
}

func TestImport_DryRun_DoesNotSave(t *testing.T) {
	dataFile := useTempLedger(t)
	ofxFile := writeOFXFixture(t, t.TempDir(), "jan2024.qfx")

	cmd := importCmd()
	cmd.SetArgs([]string{"--dry-run", ofxFile})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Dry run: would add 2 transactions")

	_, err := os.Stat(dataFile)
	assert.True(t, os.IsNotExist(err), "dry run must not create the data file")
}

func TestImport_NoFilesFound(t *testing.T) {
	useTempLedger(t)

	cmd := importCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "*.qfx")})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files found to import")
}

func TestImport_GlobPattern(t *testing.T) {
	dataFile := useTempLedger(t)
	dir := t.TempDir()
	writeOFXFixture(t, dir, "jan2024.qfx")

	cmd := importCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "*.qfx")})
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	store := ledger.New(dataFile)
	require.NoError(t, store.Restore())
	assert.Equal(t, 2, store.Len())
}

func TestImport_UnparseableFileDoesNotAbort(t *testing.T) {
	dataFile := useTempLedger(t)
	dir := t.TempDir()
	writeOFXFixture(t, dir, "good.qfx")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.qfx"), []byte("not ofx at all"), 0644))

	cmd := importCmd()
	cmd.SetArgs([]string{filepath.Join(dir, "*.qfx")})
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1 file(s) could not be read")

	store := ledger.New(dataFile)
	require.NoError(t, store.Restore())
	assert.Equal(t, 2, store.Len())
}
