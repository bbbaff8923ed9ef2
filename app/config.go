package app

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ForageFantasy/ForageFantasy/internal/daemon"
	"github.com/ForageFantasy/ForageFantasy/internal/db"
	"github.com/ForageFantasy/ForageFantasy/internal/db/models"
	"github.com/ForageFantasy/ForageFantasy/internal/modconfig"
	"github.com/ForageFantasy/ForageFantasy/internal/modding"
)

const (
	formatJSON = "json"
	formatTOML = "toml"
)

// ErrUnknownFormat is returned for a --format other than json or toml.
var ErrUnknownFormat = errors.New("unknown output format")

func init() { //nolint: gochecknoinits
	configShowCmd.Flags().StringVar(&outputFormat, "format", formatJSON, "Output format: json or toml")

	configCmd.AddCommand(configShowCmd, configVerifyCmd, configResetCmd, configDataCmd)
	rootCmd.AddCommand(configCmd)
}

var (
	outputFormat string

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Inspect and repair the stored ForageFantasy config",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Print the stored config after verification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mod, err := forageMod()
			if err != nil {
				return err
			}

			forageConfig, err := modconfig.Load(mod)
			if err != nil {
				return err
			}

			out, err := formatConfig(forageConfig, outputFormat)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}

	configVerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Clamp out of range values of the stored config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mod, err := forageMod()
			if err != nil {
				return err
			}

			forageConfig := modconfig.Default()
			if err = mod.Helper().ReadConfig(&forageConfig); err != nil {
				return err
			}

			msg := "config is valid"
			if modconfig.Verify(&forageConfig, mod) {
				msg = modconfig.CorrectedMessage
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)

			return err
		},
	}

	configResetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Replace the stored config with the defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mod, err := forageMod()
			if err != nil {
				return err
			}

			if err = mod.Helper().DeleteConfig(); err != nil && !errors.Is(err, modding.ErrConfigNotFound) {
				return err
			}

			// nothing stored anymore, so this writes the defaults
			forageConfig := modconfig.Default()
			if err = mod.Helper().ReadConfig(&forageConfig); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "config reset to defaults")

			return err
		},
	}

	configDataCmd = &cobra.Command{
		Use:   "data",
		Short: "List every document ForageFantasy stored",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := daemon.OpenStore(&cfg)
			if err != nil {
				return err
			}

			docs, err := documents(store, modconfig.ModID)
			if err != nil {
				return err
			}

			for _, d := range docs {
				if _, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", d.Key, d.Value); err != nil {
					return err
				}
			}

			return nil
		},
	}
)

// documentLister is implemented by stores that keep more than the config document.
type documentLister interface {
	Documents(modID string) ([]models.ModData, error)
}

// documents lists the stored documents of modID. Stores without a listing
// only hold the config document.
func documents(store modding.ConfigStore, modID string) ([]models.ModData, error) {
	if lister, ok := store.(documentLister); ok {
		return lister.Documents(modID)
	}

	data, err := store.Load(modID)
	if errors.Is(err, modding.ErrConfigNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return []models.ModData{{ModID: modID, Key: db.ConfigKey, Value: data}}, nil
}

func forageMod() (*modding.Mod, error) {
	store, err := daemon.OpenStore(&cfg)
	if err != nil {
		return nil, err
	}

	return daemon.NewForageMod(modding.NewRegistry(), store)
}

func formatConfig(c *modconfig.Config, format string) (string, error) {
	switch format {
	case formatJSON:
		out, err := json.MarshalIndent(c, "", "  ")

		return string(out), err
	case formatTOML:
		out, err := toml.Marshal(c)

		return string(out), err
	}

	return "", errors.Wrap(ErrUnknownFormat, format)
}
