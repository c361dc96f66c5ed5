package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"strconv"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/suite"

	"github.com/Yandex-Practicum/go-ftracker/internal/fork"
	"github.com/Yandex-Practicum/go-ftracker/internal/ftracker"
	"github.com/Yandex-Practicum/go-ftracker/internal/random"
)

type trainingRequest struct {
	Type string    `json:"type"`
	Data []float64 `json:"data"`
}

type trainingResponse struct {
	Info    *report `json:"info"`
	Message string  `json:"message"`
	Error   string  `json:"error"`
}

// ServerSuite проверяет HTTP режим ftracker
type ServerSuite struct {
	suite.Suite

	serverAddress string
	serverProcess *fork.BackgroundProcess
}

// SetupSuite запускает ftracker в режиме HTTP сервера
func (suite *ServerSuite) SetupSuite() {
	if flagTargetBinaryPath == "" {
		suite.T().Skip("-binary-path flag is not set")
	}

	port := flagServerPort
	if port == "" {
		p, err := random.UnusedPort()
		suite.Require().NoError(err, "Не удалось найти свободный порт")
		port = strconv.Itoa(p)
	}
	suite.serverAddress = "http://" + flagServerHost + ":" + port

	envs := append(os.Environ(),
		"FTRACKER_ADDRESS="+flagServerHost+":"+port,
		"FTRACKER_PPROF=true",
	)
	p := fork.NewBackgroundProcess(context.Background(), flagTargetBinaryPath,
		fork.WithArgs("-serve", "-precision", "2"),
		fork.WithEnv(envs...),
		fork.WaitPortInterval(50*time.Millisecond),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	err := p.Start(ctx)
	if err != nil {
		suite.T().Errorf("Невозможно запустить процесс командой %s: %s. Переменные окружения: %+v", p, err, envs)
		return
	}
	suite.serverProcess = p

	err = p.WaitPort(ctx, "tcp", port)
	if err != nil {
		suite.T().Errorf("Не удалось дождаться пока порт %s станет доступен для запроса: %s", port, err)
		return
	}
}

// TearDownSuite останавливает сервер
func (suite *ServerSuite) TearDownSuite() {
	p := suite.serverProcess
	if p == nil {
		return
	}

	exitCode, err := p.Stop(syscall.SIGINT, syscall.SIGKILL)
	if err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return
		}
		suite.T().Logf("Не удалось остановить процесс с помощью сигнала ОС: %s", err)
		return
	}

	if exitCode > 0 {
		suite.T().Logf("Процесс завершился с не нулевым статусом %d", exitCode)
	}

	if out := p.Stderr(); len(out) > 0 {
		suite.T().Logf("Получен STDERR лог процесса:\n\n%s", string(out))
	}
}

func (suite *ServerSuite) client() *resty.Client {
	return RestyClient(New(suite.T()), suite.serverAddress)
}

// TestTraining проверяет расчёт одиночного пакета
func (suite *ServerSuite) TestTraining() {
	for _, kind := range []string{"RUN", "WLK", "SWM"} {
		suite.Run(kind, func() {
			k, err := ftracker.ParseKind(kind)
			suite.Require().NoError(err)
			data := random.Package(k)

			var res trainingResponse
			req := suite.client().R().
				SetHeader("Content-Type", "application/json").
				SetBody(trainingRequest{Type: kind, Data: data}).
				SetResult(&res)

			resp, err := req.Post("/api/training")
			suite.Require().NoError(err, "Ошибка при выполнении запроса")
			suite.Require().Equalf(http.StatusOK, resp.StatusCode(),
				"Несоответствие статус кода ответа ожидаемому в хендлере '%s %s': %s", req.Method, req.URL, resp.String())
			suite.Assert().NotEmpty(resp.Header().Get("X-Request-ID"), "Ответ должен содержать X-Request-ID")

			suite.Require().NotNil(res.Info)
			expected := expectedReport(kind, data)
			suite.Assert().Equal(expected.TrainingType, res.Info.TrainingType)
			suite.Assert().InDelta(expected.Speed, res.Info.Speed, 1e-9)
			suite.Assert().InDelta(expected.Calories, res.Info.Calories, 1e-6)
			suite.Assert().Contains(res.Message, "Тип тренировки: "+expected.TrainingType+"; \n")
		})
	}
}

// TestTrainingErrors проверяет коды ответа для ошибочных пакетов
func (suite *ServerSuite) TestTrainingErrors() {
	cases := []struct {
		name   string
		body   trainingRequest
		status int
	}{
		{name: "unknown_type", body: trainingRequest{Type: random.UnknownCode(), Data: []float64{15000, 1, 75}}, status: http.StatusBadRequest},
		{name: "arity", body: trainingRequest{Type: "RUN", Data: []float64{15000, 1}}, status: http.StatusBadRequest},
		{name: "zero_duration", body: trainingRequest{Type: "WLK", Data: []float64{9000, 0, 75, 180}}, status: http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		suite.Run(tc.name, func() {
			var res trainingResponse
			resp, err := suite.client().R().
				SetHeader("Content-Type", "application/json").
				SetBody(tc.body).
				SetError(&res).
				Post("/api/training")
			suite.Require().NoError(err, "Ошибка при выполнении запроса")
			suite.Assert().Equal(tc.status, resp.StatusCode())
			suite.Assert().NotEmpty(res.Error)
		})
	}
}

// TestBatch проверяет пакетную обработку и сохранение порядка
func (suite *ServerSuite) TestBatch() {
	body := []trainingRequest{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "XYZ", Data: []float64{1}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
	}

	var res []trainingResponse
	resp, err := suite.client().R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&res).
		Post("/api/trainings")
	suite.Require().NoError(err, "Ошибка при выполнении запроса")
	suite.Require().Equal(http.StatusOK, resp.StatusCode())
	suite.Require().Len(res, len(body))

	suite.Assert().NotEmpty(res[1].Error)
	for _, i := range []int{0, 2, 3} {
		if suite.Assert().NotNil(res[i].Info, "элемент %d: %s", i, res[i].Error) {
			suite.Assert().Equal(expectedReport(body[i].Type, body[i].Data).TrainingType, res[i].Info.TrainingType)
		}
	}
}

// TestHeapProfile проверяет, что сервер отдаёт корректный профиль памяти
func (suite *ServerSuite) TestHeapProfile() {
	resp, err := suite.client().R().Get("/debug/pprof/heap")
	suite.Require().NoError(err, "Ошибка при выполнении запроса")
	suite.Require().Equal(http.StatusOK, resp.StatusCode())

	p, err := profile.Parse(bytes.NewReader(resp.Body()))
	suite.Require().NoError(err, "Невозможно распарсить профиль")
	suite.Assert().NotEmpty(p.SampleType, "Профиль не содержит типов семплов")
}
