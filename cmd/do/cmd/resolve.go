package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/templui/fileserver/internal/app"
	"github.com/templui/fileserver/internal/config"
	"github.com/templui/fileserver/internal/logger"
	"github.com/templui/fileserver/internal/model"
)

func ResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <directory-id>",
		Short: "Print the filesystem path and parent of a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := model.ParseDirectoryID(args[0])
			if err != nil {
				return err
			}

			cfg := config.Load()
			logger.Init(logger.Options{AppName: cfg.AppName, AppEnv: cfg.AppEnv, IsDev: cfg.IsDevelopment()})

			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			path, err := a.DirectoryService.ResolvePath(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if !id.IsRoot() {
				parentID, err := a.DirectoryService.ParentID(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "parent: %s\n", parentID)
			}
			return nil
		},
	}
}
