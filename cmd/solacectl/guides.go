package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	guideCmd := &cobra.Command{Use: "guide", Short: "Guide operations"}

	getCmd := &cobra.Command{
		Use:   "get GUIDE_ID",
		Short: "Fetch and render a guide by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := newAPIClient(apiFlag).GetGuide(args[0])
			if err != nil {
				return err
			}
			printGuide(os.Stdout, g)
			return nil
		},
	}
	guideCmd.AddCommand(getCmd)

	listCmd := &cobra.Command{
		Use:   "list PROFILE_ID",
		Short: "List guides for a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guides, err := newAPIClient(apiFlag).ListGuides(args[0])
			if err != nil {
				return err
			}
			if len(guides) == 0 {
				fmt.Println("No guides yet.")
				return nil
			}
			for _, g := range guides {
				fmt.Printf("%s  %s %s  %s\n",
					g.GuideID, g.DetectedMood, g.MoodEmoji,
					g.CreationTime.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
	guideCmd.AddCommand(listCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete GUIDE_ID",
		Short: "Delete a guide",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := newAPIClient(apiFlag).DeleteGuide(args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
	guideCmd.AddCommand(deleteCmd)

	rootCmd.AddCommand(guideCmd)

	moodCmd := &cobra.Command{
		Use:   "mood TEXT...",
		Short: "Classify the emotional tone of a piece of text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, emoji, err := newAPIClient(apiFlag).AnalyzeMood(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("%s %s\n", mood, emoji)
			return nil
		},
	}
	rootCmd.AddCommand(moodCmd)
}
