package controller

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-cli/internal/application/presenter"
	"weather-cli/internal/domain/model"
	"weather-cli/internal/domain/usecase/weather"
	"weather-cli/pkg/log"
	"weather-cli/pkg/msg"
	"weather-cli/pkg/util/numberutils"
)

const exitOption = "6"

type optionHandler func(ctx context.Context, requestID string) error

// MenuController runs the interactive loop: it prints the menu, reads an
// option and runs it to completion before showing the menu again.
type MenuController struct {
	in      *bufio.Reader
	out     io.Writer
	useCase weather.UseCase
	routes  map[string]optionHandler
}

func NewMenuController(in io.Reader, out io.Writer, useCase weather.UseCase) *MenuController {
	controller := &MenuController{
		in:      bufio.NewReader(in),
		out:     out,
		useCase: useCase,
	}
	controller.InitMenuRoutes()
	return controller
}

// InitMenuRoutes binds menu options to their handlers
func (controller *MenuController) InitMenuRoutes() {
	controller.routes = map[string]optionHandler{
		"1": controller.CurrentWeather,
		"2": controller.Forecast,
		"3": controller.AirQuality,
		"4": controller.Alerts,
		"5": controller.CompareLocations,
	}
}

// Run loops until the exit option is chosen or the input ends. Only failures
// to read or write the terminal are returned; request errors are printed.
func (controller *MenuController) Run(ctx context.Context) error {
	for {
		if err := controller.print(presenter.Menu()...); err != nil {
			return err
		}

		choice, err := controller.readLine()
		if errors.Is(err, io.EOF) && choice == "" {
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		if choice == exitOption {
			return nil
		}

		handler, ok := controller.routes[choice]
		if !ok {
			if err := controller.print(msg.GetMessage("menu.invalid-option")); err != nil {
				return err
			}
			continue
		}

		requestID := uuid.NewString()
		log.Debug("Menu option selected", zap.String("request_id", requestID), zap.String("option", choice))
		if err := handler(ctx, requestID); err != nil {
			return err
		}
	}
}

// CurrentWeather handles option 1
func (controller *MenuController) CurrentWeather(ctx context.Context, requestID string) error {
	zip, ok, err := controller.promptZip()
	if !ok || err != nil {
		return err
	}

	current, err := controller.useCase.CurrentWeather(ctx, zip)
	if err != nil {
		return controller.fail(requestID, "1", zip, err, msg.GetMessage("weather.current.unavailable", zip))
	}
	return controller.print(presenter.CurrentWeather(current)...)
}

// Forecast handles option 2
func (controller *MenuController) Forecast(ctx context.Context, requestID string) error {
	zip, ok, err := controller.promptZip()
	if !ok || err != nil {
		return err
	}

	forecast, err := controller.useCase.Forecast(ctx, zip)
	if err != nil {
		return controller.fail(requestID, "2", zip, err, msg.GetMessage("weather.forecast.unavailable", zip))
	}
	return controller.print(presenter.Forecast(forecast)...)
}

// AirQuality handles option 3
func (controller *MenuController) AirQuality(ctx context.Context, requestID string) error {
	zip, ok, err := controller.promptZip()
	if !ok || err != nil {
		return err
	}

	report, err := controller.useCase.AirQuality(ctx, zip)
	if err != nil {
		return controller.fail(requestID, "3", zip, err, msg.GetMessage("weather.air.unavailable", zip))
	}
	return controller.print(presenter.AirQuality(report)...)
}

// Alerts handles option 4
func (controller *MenuController) Alerts(ctx context.Context, requestID string) error {
	zip, ok, err := controller.promptZip()
	if !ok || err != nil {
		return err
	}

	alerts, err := controller.useCase.Alerts(ctx, zip)
	if err != nil {
		return controller.fail(requestID, "4", zip, err, msg.GetMessage("weather.alerts.unavailable", zip))
	}
	return controller.print(presenter.Alerts(alerts)...)
}

// CompareLocations handles option 5. ZIP codes are fetched one after the
// other in input order; a bad one never stops the batch.
func (controller *MenuController) CompareLocations(ctx context.Context, requestID string) error {
	if err := controller.print(msg.GetMessage("prompt.zip-list")); err != nil {
		return err
	}
	input, err := controller.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	if err := controller.print(presenter.ComparisonHeader()...); err != nil {
		return err
	}

	for _, token := range strings.Split(input, ",") {
		zip := strings.TrimSpace(token)

		if !numberutils.IsValidZip(zip) {
			if err := controller.print(presenter.ComparisonSkipped(zip)...); err != nil {
				return err
			}
			continue
		}

		current, err := controller.useCase.CurrentWeather(ctx, zip)
		if err != nil {
			controller.logFailure(requestID, "5", zip, err)
			if err := controller.print(presenter.ComparisonUnavailable(zip)...); err != nil {
				return err
			}
			continue
		}
		if err := controller.print(presenter.ComparisonEntry(current)...); err != nil {
			return err
		}
	}
	return nil
}

// promptZip asks for one ZIP code. ok is false when the input was rejected
// and the message has already been printed.
func (controller *MenuController) promptZip() (string, bool, error) {
	if err := controller.print(msg.GetMessage("prompt.zip")); err != nil {
		return "", false, err
	}

	zip, err := controller.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}

	if !numberutils.IsValidZip(zip) {
		return "", false, controller.print(msg.GetMessage("zip.invalid"))
	}
	return zip, true, nil
}

// fail logs err with its kind and prints the user-facing line
func (controller *MenuController) fail(requestID, option, zip string, err error, line string) error {
	controller.logFailure(requestID, option, zip, err)
	return controller.print(line)
}

func (controller *MenuController) logFailure(requestID, option, zip string, err error) {
	log.Warn(msg.GetMessage("app.option-fail", option, zip, err.Error()),
		zap.String("request_id", requestID),
		zap.String("option", option),
		zap.String("zip", zip),
		zap.String("error_kind", model.ErrorKind(err)),
		zap.Error(err))
}

// readLine reads one line without its surrounding whitespace. At end of input
// the partial line is returned together with io.EOF.
func (controller *MenuController) readLine() (string, error) {
	line, err := controller.in.ReadString('\n')
	return strings.TrimSpace(line), err
}

func (controller *MenuController) print(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(controller.out, line); err != nil {
			return err
		}
	}
	return nil
}
