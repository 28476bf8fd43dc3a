package tools

import (
	"log/slog"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/solanatracker/solana-data-mcp-server/internal/tracker"
)

func testRegistry(t *testing.T) *HandlerRegistry {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	config := &tracker.Config{
		APIKey:    "test-key",
		BaseURL:   "http://localhost:1",
		UserAgent: "TestClient/1.0",
	}
	return NewHandlerRegistry(tracker.NewClient(config, logger), logger)
}

// The catalog and the dispatcher's template table must describe the same
// tool set. A tool on one side only would either be advertised without a
// route or reachable without a schema.
func TestCatalogMatchesTemplates(t *testing.T) {
	names := make(map[string]bool, len(AllTools))
	for _, spec := range AllTools {
		if names[spec.Name] {
			t.Errorf("duplicate tool name %q", spec.Name)
		}
		names[spec.Name] = true

		if _, ok := tracker.Templates[spec.Name]; !ok {
			t.Errorf("tool %q has no request template", spec.Name)
		}
	}

	for name := range tracker.Templates {
		if !names[name] {
			t.Errorf("request template %q has no catalog entry", name)
		}
	}
}

func TestCatalogMethodsUnique(t *testing.T) {
	methods := make(map[string]string, len(AllTools))
	for _, spec := range AllTools {
		if prev, ok := methods[spec.Method]; ok {
			t.Errorf("method %q shared by %q and %q", spec.Method, prev, spec.Name)
		}
		methods[spec.Method] = spec.Name
	}
}

func TestCatalogSpecsComplete(t *testing.T) {
	categories := map[string]bool{
		"token": true, "search": true, "price": true, "wallet": true,
		"trades": true, "chart": true, "pnl": true, "traders": true, "stats": true,
	}

	for _, spec := range AllTools {
		if spec.Description == "" {
			t.Errorf("tool %q has no description", spec.Name)
		}
		if spec.Title == "" {
			t.Errorf("tool %q has no title", spec.Name)
		}
		if !categories[spec.Category] {
			t.Errorf("tool %q has unknown category %q", spec.Name, spec.Category)
		}
		// The whole catalog is read-only market data
		if !spec.ReadOnly || !spec.Idempotent || !spec.OpenWorld {
			t.Errorf("tool %q should be read-only, idempotent, and open-world", spec.Name)
		}
	}
}

func TestVerifyCatalog(t *testing.T) {
	h := testRegistry(t)
	if err := h.verifyCatalog(); err != nil {
		t.Errorf("verifyCatalog failed: %v", err)
	}
}

func TestBuildTool(t *testing.T) {
	h := testRegistry(t)

	spec := ToolSpec{
		Name:        "get_token_information",
		Method:      "GetTokenInformation",
		Description: "desc",
		Title:       "Get Token Information",
		Category:    "token",
		ReadOnly:    true,
		Idempotent:  true,
		OpenWorld:   true,
	}

	tool := h.buildTool(spec)

	if tool.Name != spec.Name {
		t.Errorf("Name = %q, want %q", tool.Name, spec.Name)
	}
	if tool.Description != spec.Description {
		t.Errorf("Description = %q, want %q", tool.Description, spec.Description)
	}
	if tool.Annotations == nil {
		t.Fatal("Annotations not set")
	}
	if tool.Annotations.Title != spec.Title {
		t.Errorf("Title = %q, want %q", tool.Annotations.Title, spec.Title)
	}
	if !tool.Annotations.ReadOnlyHint {
		t.Error("ReadOnlyHint not set")
	}
	if !tool.Annotations.IdempotentHint {
		t.Error("IdempotentHint not set")
	}
	if tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint {
		t.Error("OpenWorldHint not set")
	}
}

// RegisterAll exercises schema inference for every argument struct; a
// struct the SDK cannot derive a schema for panics at registration, not
// at first call.
func TestRegisterAll(t *testing.T) {
	h := testRegistry(t)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-server",
		Version: "0.0.0",
	}, nil)

	if err := h.RegisterAll(server); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
}

func TestToArgMap(t *testing.T) {
	limit := 25
	args := tracker.GetTokenHoldersArgs{
		TokenAddress: "ABC123",
		Limit:        &limit,
	}

	m, err := toArgMap(args)
	if err != nil {
		t.Fatalf("toArgMap failed: %v", err)
	}

	if m["tokenAddress"] != "ABC123" {
		t.Errorf("tokenAddress = %v, want ABC123", m["tokenAddress"])
	}
	// Numbers must keep their integer text form
	if got := m["limit"]; got == nil {
		t.Fatal("limit missing")
	} else if s, ok := got.(interface{ String() string }); !ok || s.String() != "25" {
		t.Errorf("limit = %v (%T), want json.Number 25", got, got)
	}
	// omitempty fields left unset must not appear
	if _, ok := m["page"]; ok {
		t.Error("unset optional page should be absent from arg map")
	}
}

func TestToArgMapEmptyStruct(t *testing.T) {
	m, err := toArgMap(tracker.GetTrendingTokensArgs{})
	if err != nil {
		t.Fatalf("toArgMap failed: %v", err)
	}
	if len(m) != 0 {
		t.Errorf("arg map = %v, want empty", m)
	}
}
