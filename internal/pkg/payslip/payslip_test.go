package payslip

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, Document{
		Title:    "Payslip - Amal Khan",
		Period:   "April 2025",
		Details:  []Line{{Label: "Employee Code", Value: "E001"}},
		Earnings: []Line{{Label: "Basic", Value: "3000.00"}},
		Net:      "3000.00",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
