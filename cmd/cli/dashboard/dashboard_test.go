package dashboard

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/crucial707/auth-dashboard/cmd/cli/config"
	"github.com/crucial707/auth-dashboard/internal/client"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestDashboard_TableOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"summary": {"totalUsers": 3, "activeSessions": 1, "revenue": 150,
				"userGrowth": 10.1, "sessionGrowth": 4.3, "revenueGrowth": 6.8},
			"chartData": {"users": [1,2], "revenue": [50,100], "labels": ["Jan","Mar"],
				"traffic": {"Direct": 2, "Social": 0, "Referral": 1}}
		}`))
	}))
	defer srv.Close()

	_ = os.Setenv("DASH_API_URL", srv.URL)
	defer os.Unsetenv("DASH_API_URL")
	_ = os.Setenv("HOME", t.TempDir())
	defer os.Unsetenv("HOME")

	if err := config.SaveToken("real-token"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	cmd := dashboardCmd()
	cmd.SetContext(context.Background())

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("dashboard command: %v", err)
		}
	})

	for _, want := range []string{"Summary", "Monthly series", "Traffic sources", "Mar", "150"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output, got: %s", want, out)
		}
	}
}

func TestDashboard_OfflineUsesMockPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // backend unreachable

	_ = os.Setenv("DASH_API_URL", srv.URL)
	defer os.Unsetenv("DASH_API_URL")
	_ = os.Setenv("HOME", t.TempDir())
	defer os.Unsetenv("HOME")

	if err := config.SaveToken(client.FakeToken); err != nil {
		t.Fatalf("save token: %v", err)
	}

	cmd := dashboardCmd()
	cmd.SetContext(context.Background())

	out := captureOutput(t, func() {
		if err := cmd.RunE(cmd, []string{}); err != nil {
			t.Errorf("dashboard command: %v", err)
		}
	})

	// Mock payload figures, and no traffic section in the mock shape.
	if !strings.Contains(out, "12402") || !strings.Contains(out, "48200") {
		t.Errorf("expected mock figures in output, got: %s", out)
	}
	if strings.Contains(out, "Traffic sources") {
		t.Errorf("mock payload should not render a traffic section: %s", out)
	}
}
