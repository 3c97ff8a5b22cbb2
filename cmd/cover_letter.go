package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/output"
	"github.com/spigell/hh-resume/internal/resume"
)

var coverLetterCmd = &cobra.Command{
	Use:   "cover-letter [INPUT]",
	Short: "Print the cover letter found in the résumé text",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		coverLetter(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(coverLetterCmd)

	coverLetterCmd.Flags().StringP("output", "o", "", "write the letter to a file instead of stdout")
	coverLetterCmd.Flags().StringP("text", "t", "", "inline résumé text used when INPUT is not given")
}

func coverLetter(cmd *cobra.Command, args []string) {
	log, config := setup()

	parser, err := newParser(config, log)
	if err != nil {
		log.Fatal("creating a parser", zap.Error(err))
	}

	inline, _ := cmd.Flags().GetString("text")
	record, err := loadRecord(sourceFromArgs(args, inline), parser)
	if err != nil {
		log.Fatal("reading input", zap.Error(err))
	}

	letter := resume.CoverLetter(record)
	if letter == "" {
		log.Warn("cover letter not found", zap.String("hint", "add a \"Сопроводительное письмо\" section"))
		return
	}

	target, _ := cmd.Flags().GetString("output")
	if target == "" {
		fmt.Println(letter)
		return
	}

	if err := output.WriteFile(target, []byte(letter+"\n")); err != nil {
		log.Fatal("writing the cover letter", zap.Error(err))
	}
	log.Info("cover letter written", zap.String("filename", target))
}
