// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/imamik/rbdpv/internal/ceph"
	"github.com/imamik/rbdpv/internal/config"
	"github.com/imamik/rbdpv/internal/k8s"
	"github.com/imamik/rbdpv/internal/provisioning"
	"github.com/imamik/rbdpv/internal/runner"
)

// defaultConfigFile is auto-detected in the working directory when no
// --config flag is given.
const defaultConfigFile = "rbdpv.yaml"

// Provision handles the provision command: it resolves configuration,
// evaluates the deprecation gate, and runs the provisioning pipeline for
// one volume request.
func Provision(ctx context.Context, configPath string, req provisioning.Request) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags))

	deprecated, platformVersion, err := checkDeprecation(cfg, logger)
	if err != nil {
		return err
	}
	if deprecated {
		result := provisioning.NewResult()
		result.Set("deprecated", "true")
		result.Set("platform_version", platformVersion)
		result.Set("msg", provisioning.DeprecationMessage(platformVersion))
		printResult(result)
		return nil
	}

	run := runner.NewExec(logger)
	pctx := provisioning.NewContext(ctx, cfg, req,
		ceph.NewCLI(run, cfg.Tools.Ceph, cfg.Tools.RBD, cfg.Pool),
		ceph.NewFormatter(run, cfg.Tools.MkfsDir),
		config.NewFileClusterInfo(cfg.ClusterConf),
		k8s.NewKubectlRegistrar(run, cfg.Tools.Kubectl, cfg.Kubeconfig),
		provisioning.NewLogrObserver(logger),
	)

	runErr := provisioning.Run(pctx, provisioning.Phases())
	printResult(pctx.Result)
	return runErr
}

// loadConfig resolves the configuration: an explicit path, the auto-detected
// rbdpv.yaml, or built-in defaults when neither exists.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return config.Default(), nil
		}
		path = defaultConfigFile
	}
	return config.LoadFile(path)
}

// checkDeprecation evaluates the platform version gate. The configured
// override wins; otherwise the control plane is probed when a kubeconfig is
// available. A failed probe is logged and the workflow proceeds.
func checkDeprecation(cfg *config.Config, logger logr.Logger) (bool, string, error) {
	platformVersion := cfg.PlatformVersion
	if platformVersion == "" && cfg.Kubeconfig != "" {
		v, err := k8s.PlatformVersion(cfg.Kubeconfig)
		if err != nil {
			logger.Info("platform version probe failed, running workflow", "error", err.Error())
		} else {
			platformVersion = v
		}
	}

	deprecated, err := provisioning.Deprecated(platformVersion, cfg.DeprecatedAfter)
	if err != nil {
		return false, platformVersion, err
	}
	return deprecated, platformVersion, nil
}

// printResult writes the structured result record to stdout.
func printResult(r *provisioning.Result) {
	for _, f := range r.Fields() {
		fmt.Printf("%s: %s\n", f.Key, f.Value)
	}
	if r.Failed() {
		fmt.Println("failed: true")
		fmt.Printf("msg: %s\n", r.Message())
		return
	}
	fmt.Println("failed: false")
}
