package InputParameters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
)

const ExampleFile = `
########################################
Title: "Equal mass binary"
Setup: binary
Parameters: "q=1:e=0:nu=1e-3" # name=value pairs joined by ':'
Resolution: 256
Patches: 4 # row bands filled concurrently, 2D setups only
Output: binary_init.yaml
########################################
`

// RunParameters is the YAML run description: which setup to build, the
// parameter string passed to it and how to lay out the initial data.
type RunParameters struct {
	Title      string `json:"Title"`
	Setup      string `json:"Setup"`
	Parameters string `json:"Parameters"`
	Resolution int    `json:"Resolution"`
	Patches    int    `json:"Patches"`
	Output     string `json:"Output"`
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

// SetupString joins the setup name and its parameters as "name:parameters".
func (rp *RunParameters) SetupString() string {
	if len(rp.Parameters) == 0 {
		return rp.Setup
	}
	return rp.Setup + ":" + rp.Parameters
}

// ParseSetupString sets Setup and Parameters from "name:parameters".
func (rp *RunParameters) ParseSetupString(setupString string) error {
	name, parameters, _ := strings.Cut(setupString, ":")
	if len(name) == 0 {
		return fmt.Errorf("empty setup name in %q", setupString)
	}
	rp.Setup, rp.Parameters = name, parameters
	return nil
}

func (rp *RunParameters) Validate() error {
	if len(rp.Setup) == 0 {
		return fmt.Errorf("run file must name a Setup")
	}
	if rp.Resolution < 1 {
		return fmt.Errorf("Resolution must be at least 1, got %d", rp.Resolution)
	}
	if rp.Patches < 0 {
		return fmt.Errorf("Patches must not be negative, got %d", rp.Patches)
	}
	return nil
}

func (rp *RunParameters) Print(w io.Writer) {
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", rp.Title)
	fmt.Fprintf(w, "[%s]\t\t= Setup\n", rp.Setup)
	fmt.Fprintf(w, "[%s]\t\t= Parameters\n", rp.Parameters)
	fmt.Fprintf(w, "[%d]\t\t\t= Resolution\n", rp.Resolution)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Patches\n", rp.Patches)
	fmt.Fprintf(w, "[%s]\t= Output\n", rp.Output)
}
