//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/neok-m4700/f18/colors"
	"github.com/neok-m4700/f18/internal/compiler"
)

func main() {
	colors.SetEnabled(true)
	js.Global().Set("f18Evaluate", js.FuncOf(evaluate))
	js.Global().Set("f18WasmVersion", "0.1.0")
	println("f18expr WASM evaluator ready")
	<-make(chan struct{})
}

// evaluate(code, mode, debug) runs one of "dump", "fold", "len" or
// "describe" over code.
func evaluate(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return map[string]any{
			"success": false,
			"output":  "Invalid arguments: expected (code: string, mode: string, debug: bool)",
		}
	}

	opts := &compiler.Options{
		Code:        args[0].String(),
		Debug:       args[2].Bool(),
		LogFormat:   compiler.HTML,
		Diagnostics: true,
	}
	var result compiler.Result
	switch args[1].String() {
	case "dump":
		result = compiler.Compile(opts)
	case "fold":
		opts.Fold = true
		result = compiler.Compile(opts)
	case "len":
		opts.Fold = true
		result = compiler.Length(opts)
	case "describe":
		opts.Fold = true
		result = compiler.Describe(opts)
	default:
		return map[string]any{
			"success": false,
			"output":  "Unknown mode: " + args[1].String(),
		}
	}

	return map[string]any{
		"success":     result.Success,
		"output":      result.Output,
		"diagnostics": result.Diagnostics,
	}
}
