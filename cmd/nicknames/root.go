package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "NICKNAMES"

func Execute() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nicknames",
		Short: "Scoped display-name overrides for chat personas and characters",
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().String("config", "", "Config file path (optional).")
	cmd.PersistentFlags().String("state-dir", "", "State directory (defaults to ~/.nicknames).")
	cmd.PersistentFlags().String("chat", "", "Active conversation id.")
	cmd.PersistentFlags().String("character", "", "Active character, by roster key or name.")
	cmd.PersistentFlags().String("persona-key", "", "Active persona's stable key.")
	cmd.PersistentFlags().String("persona-name", "", "Active persona's display name.")

	cmd.PersistentFlags().String("log-level", "", "Logging level: debug|info|warn|error.")
	cmd.PersistentFlags().String("log-format", "text", "Logging format: text|json.")
	cmd.PersistentFlags().Bool("log-add-source", false, "Include source file:line in logs.")

	_ = viper.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("state_dir", cmd.PersistentFlags().Lookup("state-dir"))
	_ = viper.BindPFlag("chat", cmd.PersistentFlags().Lookup("chat"))
	_ = viper.BindPFlag("character", cmd.PersistentFlags().Lookup("character"))
	_ = viper.BindPFlag("persona.key", cmd.PersistentFlags().Lookup("persona-key"))
	_ = viper.BindPFlag("persona.name", cmd.PersistentFlags().Lookup("persona-name"))
	_ = viper.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.add_source", cmd.PersistentFlags().Lookup("log-add-source"))

	viper.SetDefault("chat", "default")
	viper.SetDefault("persona.key", "persona-default")
	viper.SetDefault("logging.format", "text")
	viper.SetDefault("logging.add_source", false)
	viper.SetDefault("save.debounce", "200ms")

	cmd.AddCommand(newNicknameCmd(roleUserUse))
	cmd.AddCommand(newNicknameCmd(roleCharUse))
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newCharacterCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func initConfig() {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cfgFile := strings.TrimSpace(viper.GetString("config"))
	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to read config: %v\n", err)
	}
}
