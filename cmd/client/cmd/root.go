// cmd/client/cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"clipshare/internal/app/client"
	"clipshare/internal/app/client/config"
	"clipshare/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

var (
	cfgFile string
	cfg     *config.Config
	log     *slog.Logger
	app     *client.App
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:   "clipshare",
	Short: "clipshare - клиент общего буфера обмена",
	Long: `clipshare отправляет текст в общий буфер обмена и читает его обратно.

Чтение записей требует общего пароля (PASSCODE или ввод с клавиатуры),
журнал аудита требует ADMIN_TOKEN.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	log = logger.NewTo(cfg.Env, os.Stderr)
	app = client.New(cfg, log)
	return nil
}

func loadConfigFile() error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(config.Dir())
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		// Конфиг не найден, используем окружение и значения по умолчанию
	}
	return nil
}

// promptPasscode reads the passcode from the terminal without echo.
func promptPasscode() (string, error) {
	fmt.Fprint(os.Stderr, "Введите пароль: ")
	passcode, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(passcode), nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "конфигурационный файл")
	rootCmd.PersistentFlags().String("server", "", "адрес сервера (host:port)")
	rootCmd.PersistentFlags().Bool("tls", false, "использовать https")
	rootCmd.PersistentFlags().String("admin-token", "", "токен администратора")

	_ = v.BindPFlag("SERVER_ADDRESS", rootCmd.PersistentFlags().Lookup("server"))
	_ = v.BindPFlag("ENABLE_TLS", rootCmd.PersistentFlags().Lookup("tls"))
	_ = v.BindPFlag("ADMIN_TOKEN", rootCmd.PersistentFlags().Lookup("admin-token"))

	rootCmd.AddCommand(pasteCmd, listCmd, getCmd, copyCmd, deleteCmd, verifyCmd, logsCmd)
}
