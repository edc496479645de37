package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/orderdesk/orderdesk/internal/adapters/outbound/store"
	"github.com/orderdesk/orderdesk/internal/application"
)

// registerTools registers all OrderDesk MCP tools on the given server.
func registerTools(s *server.MCPServer, dataFile string) {
	// 1. orderdesk_list_products
	s.AddTool(
		mcplib.NewTool("orderdesk_list_products",
			mcplib.WithDescription("Returns the product catalog with live stock counts as JSON"),
		),
		handleListProducts(dataFile),
	)

	// 2. orderdesk_list_customers
	s.AddTool(
		mcplib.NewTool("orderdesk_list_customers",
			mcplib.WithDescription("Returns the known customers as JSON"),
		),
		handleListCustomers(dataFile),
	)

	// 3. orderdesk_place_order
	s.AddTool(
		mcplib.NewTool("orderdesk_place_order",
			mcplib.WithDescription("Place a complete order in one step. Applies the same stock and quantity rules as an interactive session; any rejected line rejects the whole order."),
			mcplib.WithString("customer",
				mcplib.Required(),
				mcplib.Description("Customer ID"),
			),
			mcplib.WithString("lines",
				mcplib.Required(),
				mcplib.Description("Comma-separated UPC:quantity pairs, e.g. 123:2,124:1"),
			),
			mcplib.WithString("salesperson",
				mcplib.Description("Salesperson identity recorded on the order"),
			),
		),
		handlePlaceOrder(dataFile),
	)
}

func handleListProducts(dataFile string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		products, err := store.New(dataFile).LoadProducts()
		if err != nil {
			return errorResult(fmt.Sprintf("loading products: %v", err)), nil
		}
		return jsonResult(products)
	}
}

func handleListCustomers(dataFile string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		customers, err := store.New(dataFile).LoadCustomers()
		if err != nil {
			return errorResult(fmt.Sprintf("loading customers: %v", err)), nil
		}
		return jsonResult(customers)
	}
}

func handlePlaceOrder(dataFile string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		customerID, err := request.RequireString("customer")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		rawLines, err := request.RequireString("lines")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lines, err := parseLines(rawLines)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		salesperson, _ := request.GetArguments()["salesperson"].(string)

		svc := application.NewOrderService(store.New(dataFile))
		order, err := svc.PlaceOrder(application.PlaceOrderRequest{
			CustomerID:  customerID,
			Salesperson: salesperson,
			Lines:       lines,
		})
		if err != nil {
			return errorResult(fmt.Sprintf("placing order: %v", err)), nil
		}
		return jsonResult(order)
	}
}

// parseLines splits "123:2,124:1" into requested lines.
func parseLines(raw string) ([]application.RequestedLine, error) {
	var lines []application.RequestedLine
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		upc, qty, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("line %q is not UPC:quantity", pair)
		}
		n, err := strconv.Atoi(strings.TrimSpace(qty))
		if err != nil {
			return nil, fmt.Errorf("line %q has a non-numeric quantity", pair)
		}
		lines = append(lines, application.RequestedLine{UPC: strings.TrimSpace(upc), Quantity: n})
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no lines given")
	}
	return lines, nil
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
