package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/output"
	"github.com/spigell/hh-resume/internal/pdf"
	"github.com/spigell/hh-resume/internal/render"
	"github.com/spigell/hh-resume/internal/resume"
)

const (
	PromptYes          = "Yes"
	PromptNo           = "No"
	PromptRecordToFile = "Dump parsed record to file"
	PromptShowFields   = "Show parsed sections"
	defaultOutput      = "resume.pdf"
	htmlExt            = ".html"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Output file exists. Overwrite?",
	Items: []string{PromptYes, PromptNo, PromptShowFields, PromptRecordToFile},
}

var renderCmd = &cobra.Command{
	Use:   "render [INPUT]",
	Short: "Render résumé text or a parsed .json record to PDF or HTML",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runRender(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", defaultOutput, "output file path (PDF, or HTML with --html-only)")
	renderCmd.Flags().StringP("text", "t", "", "inline résumé text used when INPUT is not given")
	renderCmd.Flags().String("template", "", "template name (default from render.template)")
	renderCmd.Flags().String("browser", "", "browser executable used for printing")
	renderCmd.Flags().Bool("html-only", false, "write HTML instead of printing to PDF")
	renderCmd.Flags().BoolP("yes", "y", false, "overwrite an existing output file without asking")
}

// runRender is the document build command.
func runRender(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	log, config := setup()

	rcfg := renderConfig(config)
	if name, _ := cmd.Flags().GetString("template"); name != "" {
		rcfg.Template = name
	}
	if browser, _ := cmd.Flags().GetString("browser"); browser != "" {
		rcfg.Browser = browser
	}
	config.Render = &rcfg

	log = withCommonFields(log, config, rcfg.Template)

	parser, err := newParser(config, log)
	if err != nil {
		log.Fatal("creating a parser", zap.Error(err))
	}

	inline, _ := cmd.Flags().GetString("text")
	record, err := loadRecord(sourceFromArgs(args, inline), parser)
	if err != nil {
		log.Fatal("reading input", zap.Error(err))
	}

	log.Info("record ready", zap.Strings("fields", record.Fields()), zap.Int("jobs", len(record.WorkExperience)))

	renderer, err := newRenderer(config, log)
	if err != nil {
		log.Fatal("loading templates", zap.Error(err))
	}

	html, err := renderer.Render(record, rcfg.Template)
	if err != nil {
		if errors.Is(err, render.ErrUnknownTemplate) {
			log.Fatal("rendering", zap.Error(err), zap.Strings("templates", renderer.Names()))
		}
		log.Fatal("rendering", zap.Error(err))
	}

	target, _ := cmd.Flags().GetString("output")
	htmlOnly, _ := cmd.Flags().GetBool("html-only")
	if htmlOnly {
		target = output.WithExt(target, htmlExt)
	}

	if output.Exists(target) {
		yes, _ := cmd.Flags().GetBool("yes")
		if err := confirmOverwrite(yes, target, record, log); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			log.Fatal("exiting", zap.Error(err))
		}
	}

	doc := []byte(html)
	if !htmlOnly {
		doc, err = newPrinter(config, log).Print(ctx, html, renderer.Dir())
		if err != nil {
			if errors.Is(err, pdf.ErrRendererUnavailable) {
				log.Fatal("printing pdf", zap.Error(err),
					zap.String("hint", "install Chrome or Chromium, set render.browser, or use --html-only"),
				)
			}
			log.Fatal("printing pdf", zap.Error(err))
		}
	}

	if err := output.WriteFile(target, doc); err != nil {
		var writeErr *output.WriteError
		if errors.As(err, &writeErr) && writeErr.Locked() {
			log.Fatal("writing the document", zap.Error(err),
				zap.String("hint", "the file may be open in another program, close it or choose another --output"),
			)
		}
		log.Fatal("writing the document", zap.Error(err))
	}

	log.Info("document generated", zap.String("filename", target), zap.Int("bytes", len(doc)))
}

// confirmOverwrite asks until the user allows or refuses the overwrite.
func confirmOverwrite(autoApprove bool, target string, record *resume.Record, log *zap.Logger) error {
	if autoApprove {
		return nil
	}

	log.Info("output file exists", zap.String("filename", target))

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		done, err := handleAction(action, record, log)
		if err != nil || done {
			return err
		}
	}
}

func handleAction(action string, record *resume.Record, log *zap.Logger) (bool, error) {
	switch action {
	case PromptYes:
		return true, nil
	case PromptNo:
		log.Info("exiting", zap.String("reason", "got no from prompt"))
		return true, errExit
	case PromptShowFields:
		log.Info(strings.Join(record.Fields(), ", "), zap.Int("jobs", len(record.WorkExperience)))
		return false, nil
	case PromptRecordToFile:
		filename, err := output.DumpToTmpFile(record, output.FormatJSON)
		if err != nil {
			return false, fmt.Errorf("dump record to file: %w", err)
		}
		log.Info("dumping record to file", zap.String("filename", filename))
		return false, nil
	default:
		return false, fmt.Errorf("invalid action: %s", action)
	}
}
