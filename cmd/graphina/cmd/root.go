package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "graphina",
	Short: "A graph data-science toolkit",
	Long: `graphina loads a graph from an edge list, adjacency list, GraphML,
JSON, or binary file and runs a traversal, centrality, or community
kernel against it.`,
}

var verbose bool

// Execute runs the root command, exiting the process on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("graphina failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, setupLogging)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.graphina.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.PersistentFlags().StringP("in", "i", "", "input graph file")
	rootCmd.PersistentFlags().String("format", "edgelist", "input format: edgelist|adjlist|graphml|json|binary")
	rootCmd.PersistentFlags().String("separator", ",", "field separator for text formats")
	rootCmd.PersistentFlags().Bool("strict", false, "reject malformed input lines instead of skipping them")
	rootCmd.PersistentFlags().Bool("directed", false, "treat the loaded graph as directed")
	rootCmd.PersistentFlags().Bool("weighted", true, "adjacency-list input carries interleaved weight tokens")

	bindFlag("in", rootCmd.PersistentFlags().Lookup("in"))
	bindFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	bindFlag("separator", rootCmd.PersistentFlags().Lookup("separator"))
	bindFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	bindFlag("directed", rootCmd.PersistentFlags().Lookup("directed"))
	bindFlag("weighted", rootCmd.PersistentFlags().Lookup("weighted"))

	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(bfsCmd)
	rootCmd.AddCommand(dijkstraCmd)
	rootCmd.AddCommand(pagerankCmd)
	rootCmd.AddCommand(louvainCmd)
	rootCmd.AddCommand(convertCmd)
}

var cfgFile string

func bindFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		fmt.Fprintf(os.Stderr, "graphina: bind flag %s: %v\n", key, err)
	}
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".graphina")
			viper.SetConfigType("yaml")
		}
	}
	viper.SetEnvPrefix("GRAPHINA")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}
