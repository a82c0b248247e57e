package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"roi_projector/pkg/core/roi"
)

func main() {
	mode := flag.String("mode", "calculate", "Mode: check or calculate")
	dataStr := flag.String("data", "", "JSON inputs payload")
	flag.Parse()

	if *dataStr == "" {
		fmt.Println("Error: No data provided")
		os.Exit(1)
	}

	var in roi.Inputs
	if err := json.Unmarshal([]byte(*dataStr), &in); err != nil {
		fmt.Printf("Error unmarshaling data: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch *mode {
	case "check":
		err = runChecks(os.Stdout, in)
	case "calculate":
		err = runCalculations(os.Stdout, in)
	default:
		err = fmt.Errorf("unknown mode: %s", *mode)
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func runChecks(w io.Writer, in roi.Inputs) error {
	if err := in.Validate(); err != nil {
		return err
	}
	fmt.Fprintln(w, "Success: inputs within control ranges")
	return nil
}

func runCalculations(w io.Writer, in roi.Inputs) error {
	return json.NewEncoder(w).Encode(roi.Project(in))
}
