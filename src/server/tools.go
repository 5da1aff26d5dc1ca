// Package server registers the eunicode operations as MCP tools.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/Easy-Infra-Ltd/eunicode/src/detect"
	"github.com/Easy-Infra-Ltd/eunicode/src/escape"
	"github.com/Easy-Infra-Ltd/eunicode/src/sanitizer"
	"github.com/Easy-Infra-Ltd/eunicode/src/textstate"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ToolSanitize   = "sanitize"
	ToolDetect     = "detect"
	ToolCharacters = "characters"
)

// textArgs is the input shared by every tool.
type textArgs struct {
	Text       string   `json:"text"`
	KeepColors *bool    `json:"keepColors,omitempty"`
	Operations []string `json:"operations,omitempty"`
	RawSlugify bool     `json:"rawSlugify,omitempty"`
}

var textProperty = map[string]any{
	"type":        "string",
	"description": "untrusted text; terminal escape sequences are filtered before processing",
}

// RegisterTools adds the sanitize, detect and characters tools to srv and
// returns how many were registered.
func RegisterTools(srv *mcp.Server, cfg config.Config, logger *slog.Logger) int {
	h := &handlers{cfg: cfg, logger: logger.With("area", "tools")}

	srv.AddTool(&mcp.Tool{
		Name:        ToolSanitize,
		Description: "Normalize text to safe ASCII and apply the selected operations (strip, defang, censor, slugify) in order.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":       textProperty,
				"keepColors": map[string]any{"type": "boolean"},
				"rawSlugify": map[string]any{"type": "boolean", "description": "slugify the raw text without normalizing it"},
				"operations": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string", "enum": []string{config.OpStrip, config.OpDefang, config.OpCensor, config.OpSlugify}},
				},
			},
			"required": []string{"text"},
		},
	}, h.sanitize)

	srv.AddTool(&mcp.Tool{
		Name:        ToolDetect,
		Description: "Check text for dangerous characters. Safe text is returned unchanged; unsafe text is never echoed.",
		InputSchema: textSchema(),
	}, h.detect)

	srv.AddTool(&mcp.Tool{
		Name:        ToolCharacters,
		Description: "List every character of the text with its Unicode category, block, script, identifier type and name.",
		InputSchema: textSchema(),
	}, h.characters)

	return 3
}

func textSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text":       textProperty,
			"keepColors": map[string]any{"type": "boolean"},
		},
		"required": []string{"text"},
	}
}

type handlers struct {
	cfg    config.Config
	logger *slog.Logger
}

// input decodes the tool arguments and runs the text through the escape
// filter.
func (h *handlers) input(req *mcp.CallToolRequest) (textArgs, textstate.Unprocessed, error) {
	var args textArgs
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return args, textstate.Unprocessed{}, fmt.Errorf("decoding arguments: %w", err)
		}
	}

	keepColors := config.Bool(h.cfg.KeepColors)
	if args.KeepColors != nil {
		keepColors = *args.KeepColors
	}

	return args, textstate.New(escape.Strip([]byte(args.Text), keepColors)), nil
}

func (h *handlers) sanitize(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, in, err := h.input(req)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	ops := args.Operations
	if len(ops) == 0 {
		ops = h.cfg.Operations
	}
	pipeline, err := sanitizer.BuildPipeline(ops)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	mode := sanitizer.ModeTransform
	if args.RawSlugify {
		mode = sanitizer.ModeRawSlug
	}

	out, err := pipeline.Run(ctx, in, mode)
	if err != nil {
		h.logger.Error("sanitize failed", "error", err)
		return nil, fmt.Errorf("sanitize: %w", err)
	}

	h.logger.Debug("sanitized text", "mode", mode, "operations", pipeline.Names())
	return textResult(out.Text), nil
}

func (h *handlers) detect(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, in, err := h.input(req)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	out, err := sanitizer.NewPipeline().Run(ctx, in, sanitizer.ModeDetect)
	if err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	if out.Status == sanitizer.StatusOK {
		return textResult(out.Text), nil
	}

	h.logger.Warn("dangerous characters detected", "count", len(out.Report))
	res, err := reportResult(out.Message, out.Report)
	if err != nil {
		return nil, err
	}
	res.IsError = true
	return res, nil
}

func (h *handlers) characters(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	_, in, err := h.input(req)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	out, err := sanitizer.NewPipeline().Run(ctx, in, sanitizer.ModeCharacters)
	if err != nil {
		return nil, fmt.Errorf("characters: %w", err)
	}
	return reportResult("", out.Report)
}

// reportPayload is the structured content of report results.
type reportPayload struct {
	Characters []detect.CharacterReport `json:"characters"`
}

func reportResult(message string, report []detect.CharacterReport) (*mcp.CallToolResult, error) {
	var b bytes.Buffer
	if message != "" {
		b.WriteString(message)
		b.WriteString("\n")
	}
	if err := detect.RenderTable(&b, report); err != nil {
		return nil, err
	}

	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: strings.TrimRight(b.String(), "\n")}},
		StructuredContent: reportPayload{Characters: report},
	}, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(reason string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: reason}},
		IsError: true,
	}
}
