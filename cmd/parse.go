package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/input"
	"github.com/spigell/hh-resume/internal/logger"
	"github.com/spigell/hh-resume/internal/output"
)

var parseCmd = &cobra.Command{
	Use:   "parse [INPUT]",
	Short: "Parse résumé text into a structured record",
	Long:  "Parse résumé text from INPUT (a file, or - for stdin) and print the record as JSON or YAML.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("output", "o", "", "write the record to a file instead of stdout")
	parseCmd.Flags().StringP("format", "f", output.FormatJSON, "output format: json or yaml")
	parseCmd.Flags().StringP("text", "t", "", "inline résumé text used when INPUT is not given")
}

func parse(cmd *cobra.Command, args []string) {
	log, config := setup()

	parser, err := newParser(config, log)
	if err != nil {
		log.Fatal("creating a parser", zap.Error(err))
	}

	inline, _ := cmd.Flags().GetString("text")
	src := sourceFromArgs(args, inline)

	text, err := input.Load(src)
	if err != nil {
		log.Fatal("reading input", zap.Error(err), zap.String(logger.FieldSource, input.Describe(src)))
	}

	log.Debug("input loaded",
		zap.String(logger.FieldSource, input.Describe(src)),
		zap.String("preview", logger.Preview(text, logger.PreviewLimit)),
	)

	record := parser.Parse(text)

	format, _ := cmd.Flags().GetString("format")
	data, err := output.Marshal(record, format)
	if err != nil {
		log.Fatal("encoding the record", zap.Error(err))
	}

	target, _ := cmd.Flags().GetString("output")
	if target == "" {
		os.Stdout.Write(data)
		return
	}

	if err := output.WriteFile(target, data); err != nil {
		log.Fatal("writing the record", zap.Error(err))
	}

	log.Info("record written",
		zap.String("filename", target),
		zap.Strings("fields", record.Fields()),
		zap.Int("jobs", len(record.WorkExperience)),
	)
}
