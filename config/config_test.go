package config

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil", nil, nil},
		{"plain", []string{"a", "b"}, []string{"a", "b"}},
		{"env string", []string{"a, b,,c "}, []string{"a", "b", "c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitList(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Environment: EnvironmentConfig{Name: "development"},
			Postgres:    PostgresConfig{DSN: "postgres://localhost/tastoria"},
			Signup:      SignupConfig{Store: SignupStoreMemory},
			Mail:        MailConfig{Provider: MailProviderLog},
			Booking:     BookingConfig{OpenSlots: []string{"09:00 AM"}},
		}
	}

	t.Run("development gets a secret", func(t *testing.T) {
		c := valid()
		if err := c.validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.JWT.Secret == "" {
			t.Error("expected fallback secret")
		}
	})

	t.Run("production requires secret", func(t *testing.T) {
		c := valid()
		c.Environment.Name = "production"
		if err := c.validate(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown signup store", func(t *testing.T) {
		c := valid()
		c.Signup.Store = "disk"
		if err := c.validate(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown mail provider", func(t *testing.T) {
		c := valid()
		c.Mail.Provider = "smtp"
		if err := c.validate(); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		c := valid()
		c.Postgres.DSN = ""
		if err := c.validate(); err == nil {
			t.Error("expected error")
		}
	})
}
