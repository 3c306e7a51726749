package s3_test

import (
	"testing"

	"agenda/infras/s3"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		key    string
		want   string
	}{
		{name: "plain", domain: "https://files.example.com", key: "reports/2024-01.csv", want: "https://files.example.com/reports/2024-01.csv"},
		{name: "trailing slash", domain: "https://files.example.com/", key: "reports/2024-01.csv", want: "https://files.example.com/reports/2024-01.csv"},
		{name: "leading slash", domain: "https://files.example.com", key: "/reports/2024-01.csv", want: "https://files.example.com/reports/2024-01.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s3.PublicURL(tt.domain, tt.key))
		})
	}
}
