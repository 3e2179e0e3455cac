package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/saulo-duarte/codequiz-lambda/internal/container"
	"github.com/saulo-duarte/codequiz-lambda/internal/question"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one question and print it as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := container.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		result := c.QuestionContainer.Service.GenerateCodingQuestion(cmd.Context())

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		if errResp, ok := result.(*question.ErrorResponse); ok {
			return errors.New(errResp.Message)
		}
		return nil
	},
}
