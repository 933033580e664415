package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarafcore/sarafcore_backend/internal/core/domain"
)

func TestModuleFromAction(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{action: "TXN_ENTRY", want: "TXN"},
		{action: "TXN_DEL", want: "TXN"},
		{action: "CUSTOMER_REG", want: "CUSTOMER"},
		{action: "CONFIG_UPDATE", want: "CONFIG"},
		{action: "REPORT_GEN", want: "REPORT"},
		{action: "LOGIN", want: "LOGIN"},
		{action: "_WEIRD", want: "_WEIRD"},
		{action: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ModuleFromAction(tt.action))
		})
	}
}
