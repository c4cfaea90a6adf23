package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-adp-views/internal/models"
	"github.com/noah-isme/sma-adp-views/internal/viewmodel"
	"github.com/noah-isme/sma-adp-views/pkg/config"
)

type renderOptions struct {
	file  string
	state string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{}
	cmd := &cobra.Command{
		Use:       "render <classes|departments|subjects|faculty>",
		Short:     "Project a JSON payload into its detail page",
		Long:      "Reads the resource payload from --file (or stdin with -) and prints the projected page.\n--state forces a loading, error or not_found fetch to preview the state pages.",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"classes", "departments", "subjects", "faculty"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			raw, err := readPayload(cmd.InOrStdin(), opts.file, opts.state)
			if err != nil {
				return err
			}
			page, err := renderPayload(newProjector(cfg.CDN, root.logger), args[0], raw, opts.state)
			if err != nil {
				return err
			}
			root.logger.Debug("rendered page",
				zap.String("resource", page.PageHeader().Resource),
				zap.String("state", string(page.PageHeader().State)),
			)
			return root.write(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().StringVarP(&opts.file, "file", "f", "-", "payload file, - for stdin")
	cmd.Flags().StringVar(&opts.state, "state", string(viewmodel.StateReady), "fetch state: ready, loading, error or not_found")
	return cmd
}

func readPayload(stdin io.Reader, file, state string) ([]byte, error) {
	if state != string(viewmodel.StateReady) {
		return nil, nil
	}
	if file == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	return raw, nil
}

// renderPayload decodes raw into the resource payload and projects it under the requested state.
func renderPayload(p *viewmodel.Projector, resource string, raw []byte, state string) (viewmodel.Page, error) {
	switch resource {
	case "classes":
		f, err := decodeFetch[models.ClassRecord](raw, state)
		if err != nil {
			return nil, err
		}
		return p.Class(f), nil
	case "departments":
		f, err := decodeFetch[models.DepartmentDetails](raw, state)
		if err != nil {
			return nil, err
		}
		return p.Department(f), nil
	case "subjects":
		f, err := decodeFetch[models.SubjectDetails](raw, state)
		if err != nil {
			return nil, err
		}
		return p.Subject(f), nil
	case "faculty":
		f, err := decodeFetch[models.FacultyPayload](raw, state)
		if err != nil {
			return nil, err
		}
		return p.Faculty(f), nil
	default:
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
}

func decodeFetch[T any](raw []byte, state string) (viewmodel.Fetch[T], error) {
	switch viewmodel.PageState(state) {
	case viewmodel.StateLoading:
		return viewmodel.Fetch[T]{IsLoading: true}, nil
	case viewmodel.StateFailed:
		return viewmodel.Fetch[T]{IsError: true}, nil
	case viewmodel.StateNotFound:
		return viewmodel.Fetch[T]{}, nil
	case viewmodel.StateReady:
		var data T
		if err := json.Unmarshal(raw, &data); err != nil {
			return viewmodel.Fetch[T]{}, fmt.Errorf("decode payload: %w", err)
		}
		return viewmodel.Fetch[T]{Data: &data}, nil
	default:
		return viewmodel.Fetch[T]{}, fmt.Errorf("unknown state %q", state)
	}
}

func newClassifyCmd(root *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Report which profile variant a faculty payload resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readPayload(cmd.InOrStdin(), file, string(viewmodel.StateReady))
			if err != nil {
				return err
			}
			var payload models.FacultyPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("decode payload: %w", err)
			}
			return root.write(cmd.OutOrStdout(), map[string]string{
				"user":    payload.User.ID,
				"role":    string(payload.User.Role),
				"variant": string(viewmodel.Classify(payload)),
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "payload file, - for stdin")
	return cmd
}
