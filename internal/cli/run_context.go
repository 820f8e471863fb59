package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/probench/probench/internal/httpclient"
	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/internal/suite"
	"github.com/probench/probench/pkg/probe"
)

// runContext is everything a command needs after flag parsing: the filtered
// probe set, the shared params, and the suite's lifecycle target.
type runContext struct {
	loaded   *suite.Loaded
	selected []registry.Probe
	params   *probe.Params
	target   probe.Target
	noColor  bool
}

// buildRunContext loads the suite named by the command's flags and prepares
// the shared, effectively-immutable Params for the run.
func buildRunContext(cmd *cobra.Command) (*runContext, error) {
	location, _ := cmd.Flags().GetString("suite")
	baseURL, _ := cmd.Flags().GetString("base-url")
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	noColor, _ := cmd.Flags().GetBool("no-color")
	testing, _ := cmd.Flags().GetBool("testing")

	loaded, err := suite.Load(location)
	if err != nil {
		return nil, err
	}

	if baseURL == "" {
		baseURL = loaded.BaseURL
	}
	if baseURL == "" {
		return nil, fmt.Errorf("no base URL: set baseUrl in the suite or pass --base-url")
	}
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	filter := registry.Filter{Include: include, Exclude: exclude}
	selected := loaded.Registry.Select(filter)
	if len(selected) == 0 {
		return nil, &registry.DiscoveryError{
			Location: location,
			Reason:   "no probes match the include/exclude filter",
		}
	}

	params := &probe.Params{
		BaseURL: baseURL,
		Client: httpclient.NewClient(
			httpclient.WithBaseURL(baseURL),
			httpclient.WithTimeout(timeout),
		),
		Timeout: timeout,
		Testing: testing,
		Vars:    loaded.Variables,
	}

	return &runContext{
		loaded:   loaded,
		selected: selected,
		params:   params,
		target:   loaded.Target(params),
		noColor:  noColor,
	}, nil
}
