package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"katanatsl"
	"katanatsl/internal/render"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the decoder as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Starting KATANA TSL MCP server...")
		return server.ServeStdio(newMCPServer())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func newMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"KATANA TSL MCP",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	decodeTool := mcp.NewTool("katana_decode-tsl",
		mcp.WithDescription("Decodes a BOSS KATANA MkII TSL patch file into structured patch data."),
		mcp.WithString("tsl-json", mcp.Required(), mcp.Description("The complete content of the .tsl file.")),
		mcp.WithString("format", mcp.Description("Output format: json (default), yaml or text.")),
	)
	s.AddTool(decodeTool, decodeToolHandler)

	listTool := mcp.NewTool("katana_list-patches",
		mcp.WithDescription("Lists the patch names of a KATANA MkII TSL file with their bank and slot."),
		mcp.WithString("tsl-json", mcp.Required(), mcp.Description("The complete content of the .tsl file.")),
	)
	s.AddTool(listTool, listToolHandler)

	describeTool := mcp.NewTool("katana_describe-patch",
		mcp.WithDescription("Shows one patch of a TSL file with the effect blocks it has selected."),
		mcp.WithString("tsl-json", mcp.Required(), mcp.Description("The complete content of the .tsl file.")),
		mcp.WithNumber("bank", mcp.Required(), mcp.Description("Bank index, from 0.")),
		mcp.WithNumber("slot", mcp.Required(), mcp.Description("Slot index within the bank, from 0.")),
	)
	s.AddTool(describeTool, describeToolHandler)

	enumTool := mcp.NewTool("katana_describe-enum",
		mcp.WithDescription("Returns the codes, names and labels of a KATANA parameter enum. Without a domain, lists the domain names."),
		mcp.WithString("domain", mcp.Description("Enum domain name, e.g. AmpType or ModFxType.")),
	)
	s.AddTool(enumTool, enumToolHandler)

	return s
}

func decodeRequest(request mcp.CallToolRequest) (*katanatsl.Document, error) {
	tsl, err := request.RequireString("tsl-json")
	if err != nil {
		return nil, err
	}
	return katanatsl.DecodeTSL([]byte(tsl), katanatsl.WithWorkers(cfg.Workers))
}

func renderResult(format string, v any) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	if err := render.Write(&buf, format, v); err != nil {
		return nil, fmt.Errorf("failed to render result: %v", err)
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func decodeToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling decode request.")

	format := strings.ToLower(request.GetString("format", cfg.Format))
	if !render.Valid(format) {
		return mcp.NewToolResultError(errUnknownFormat(format).Error()), nil
	}
	doc, err := decodeRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return renderResult(format, doc)
}

func listToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling list patches request.")

	doc, err := decodeRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var sb strings.Builder
	for _, ref := range doc.Patches() {
		fmt.Fprintf(&sb, "%d:%d\t%s\n", ref.Bank, ref.Slot, ref.Patch.Name)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func describeToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling describe patch request.")

	bank, err := request.RequireInt("bank")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	slot, err := request.RequireInt("slot")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	doc, err := decodeRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if bank < 0 || bank >= len(doc.Banks) || slot < 0 || slot >= len(doc.Banks[bank]) {
		return mcp.NewToolResultError(fmt.Sprintf("no patch at bank %d slot %d", bank, slot)), nil
	}
	ref := katanatsl.PatchRef{Bank: bank, Slot: slot, Patch: doc.Banks[bank][slot]}
	return renderResult("json", render.Describe(ref))
}

func enumToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling enum request.")

	name := request.GetString("domain", "")
	if name == "" {
		var sb strings.Builder
		for _, d := range katanatsl.Domains() {
			sb.WriteString(d.Name())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
	d, ok := katanatsl.LookupDomain(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown enum domain %q", name)), nil
	}
	return renderResult("text", d)
}
