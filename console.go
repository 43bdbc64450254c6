package main

import (
	"errors"
	"strconv"
	"strings"
)

type console struct {
	ctrl *controller
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errNoObject = errors.New("model is not loaded")

var consoleCommands = map[string]func(ctrl *controller, args []float32) ([][]float32, error){
	"zoom": func(ctrl *controller, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			if !ctrl.SetZoom(args[0]) {
				return nil, errNoObject
			}
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{ctrl.Zoom()}}, nil
	},
	"rotation": func(ctrl *controller, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			if !ctrl.SetRotationY(args[0]) {
				return nil, errNoObject
			}
		default:
			return nil, errArgumentNumber
		}
		return [][]float32{{ctrl.RotationY()}}, nil
	},
	"camera": func(ctrl *controller, args []float32) ([][]float32, error) {
		switch len(args) {
		case 0:
		case 1:
			ctrl.SetCameraY(args[0])
		default:
			return nil, errArgumentNumber
		}
		p := ctrl.Camera()
		return [][]float32{{p[0], p[1], p[2]}}, nil
	},
	"size": func(ctrl *controller, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return [][]float32{{
			float32(ctrl.view.width), float32(ctrl.view.height), float32(ctrl.view.aspect),
		}}, nil
	},
	"bounds": func(ctrl *controller, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		min, max, ok := ctrl.Bounds()
		if !ok {
			return nil, errNoObject
		}
		return [][]float32{
			{min[0], min[1], min[2]},
			{max[0], max[1], max[2]},
		}, nil
	},
	"reset": func(ctrl *controller, args []float32) ([][]float32, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		ctrl.ResetView()
		return nil, nil
	},
}

func (c *console) Run(line string) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	var argsFloat []float32
	for i := 1; i < len(args); i++ {
		f, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return "", err
		}
		argsFloat = append(argsFloat, float32(f))
	}
	res, err := fn(c.ctrl, argsFloat)
	if err != nil {
		return "", err
	}
	var resStr []string
	for _, vv := range res {
		var resLine []string
		for _, v := range vv {
			resLine = append(resLine, strconv.FormatFloat(float64(v), 'f', 3, 32))
		}
		resStr = append(resStr, strings.Join(resLine, " "))
	}
	return strings.Join(resStr, "\n"), nil
}
