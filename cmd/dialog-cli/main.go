package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	dialog "github.com/goliatone/go-dialog"
	"github.com/goliatone/go-dialog/pkg/field"
	"github.com/goliatone/go-dialog/pkg/loader"
	"github.com/goliatone/go-dialog/pkg/openapi"
)

func main() {
	definition := flag.String("definition", "", "prompt definition path (YAML or JSON)")
	document := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operationId to derive the prompt from")
	confirm := flag.String("confirm", "", "ask a yes/no question instead of running a prompt")
	output := flag.String("output", "", "output file for collected values (stdout if empty)")
	flag.Parse()

	ctx := context.Background()

	svc, err := dialog.Terminal()
	if err != nil {
		log.Fatalf("terminal backend: %v", err)
	}

	if *confirm != "" {
		ok, err := svc.ConfirmBool(ctx, dialog.ConfirmOptions{Title: *confirm})
		if err != nil {
			log.Fatalf("confirm: %v", err)
		}
		fmt.Println(ok)
		return
	}

	descriptors, rules, title, lead, err := resolvePrompt(ctx, *definition, *document, *operation)
	if err != nil {
		log.Fatal(err)
	}

	outcome, err := svc.Input(ctx, dialog.InputOptions{
		Title:  title,
		Lead:   lead,
		Fields: descriptors,
		Rules:  rules,
	})
	if err != nil {
		log.Fatalf("prompt: %v", err)
	}
	if !outcome.Confirmed() {
		fmt.Fprintf(os.Stderr, "dialog %s\n", outcome.Status)
		os.Exit(1)
	}

	payload, err := json.MarshalIndent(outcome.Values, "", "  ")
	if err != nil {
		log.Fatalf("encode values: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, payload, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Values written to %s\n", *output)
		return
	}
	fmt.Println(string(payload))
}

func resolvePrompt(ctx context.Context, definitionPath, documentPath, operationID string) ([]field.Descriptor, []field.Rule, string, string, error) {
	switch {
	case definitionPath != "":
		def, err := loader.LoadFile(definitionPath)
		if err != nil {
			return nil, nil, "", "", fmt.Errorf("load definition: %w", err)
		}
		rules, err := loader.Compile(def.Rules)
		if err != nil {
			return nil, nil, "", "", fmt.Errorf("compile rules: %w", err)
		}
		return def.Fields, rules, def.Title, def.Lead, nil

	case documentPath != "" && operationID != "":
		doc, err := openapi.LoadFile(ctx, documentPath)
		if err != nil {
			return nil, nil, "", "", fmt.Errorf("load document: %w", err)
		}
		def, err := doc.PromptDefinition(operationID)
		if err != nil {
			return nil, nil, "", "", err
		}
		rules, err := loader.Compile(def.Rules)
		if err != nil {
			return nil, nil, "", "", fmt.Errorf("compile rules: %w", err)
		}
		return def.Fields, rules, def.Title, def.Lead, nil

	default:
		return nil, nil, "", "", fmt.Errorf("either -definition or -openapi with -operation is required")
	}
}
