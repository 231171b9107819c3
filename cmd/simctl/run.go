package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var (
		age         int
		gender      string
		hobbies     string
		personality string
		situation   string
		goals       string
		choice      string
		fromFile    string
		demo        bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Submit a simulation form and print the stored record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var payload map[string]interface{}
			if fromFile != "" {
				data, err := os.ReadFile(fromFile)
				if err != nil {
					return err
				}
				if err := json.Unmarshal(data, &payload); err != nil {
					return fmt.Errorf("parse %s: %w", fromFile, err)
				}
			} else {
				payload = map[string]interface{}{
					"age":               age,
					"hobbies":           hobbies,
					"personality":       personality,
					"currentSituation":  situation,
					"currentGoals":      goals,
					"alternativeChoice": choice,
				}
				if gender != "" {
					payload["gender"] = gender
				}
			}

			path := "/api/simulations"
			if demo {
				path = "/api/simulations/demo"
			}
			resp, err := newClient().R().SetBody(payload).Post(path)
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
			}
			fmt.Println(resp.String())
			return nil
		},
	}

	runCmd.Flags().IntVar(&age, "age", 0, "Age (16-80)")
	runCmd.Flags().StringVar(&gender, "gender", "", "Gender (optional)")
	runCmd.Flags().StringVar(&hobbies, "hobbies", "", "Hobbies and interests")
	runCmd.Flags().StringVar(&personality, "personality", "", "Personality traits")
	runCmd.Flags().StringVar(&situation, "situation", "", "Current life situation")
	runCmd.Flags().StringVar(&goals, "goals", "", "Current goals")
	runCmd.Flags().StringVar(&choice, "choice", "", "Alternative life choice")
	runCmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read the form from a JSON file instead of flags")
	runCmd.Flags().BoolVar(&demo, "demo", false, "Use the offline demo path instead of live generation")

	rootCmd.AddCommand(runCmd)
}
