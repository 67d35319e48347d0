package mqtt

import (
	"encoding/json"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	coremetrics "github.com/kilianp07/packtherm/core/metrics"
	"github.com/kilianp07/packtherm/infra/logger"
)

// Config defines the connection parameters for the run publisher.
type Config struct {
	Enabled  bool   `json:"enabled"`
	Broker   string `json:"broker"`
	ClientID string `json:"client_id"`
	Username string `json:"username"`
	Password string `json:"password"`
	Topic    string `json:"topic"`
	QoS      byte   `json:"qos"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.ClientID == "" {
		c.ClientID = "packtherm"
	}
	if c.Topic == "" {
		c.Topic = "packtherm/runs"
	}
}

type pahoClient interface {
	IsConnected() bool
	Connect() paho.Token
	Disconnect(quiesce uint)
	Publish(topic string, qos byte, retained bool, payload interface{}) paho.Token
}

var newMQTTClient = func(opts *paho.ClientOptions) pahoClient {
	return paho.NewClient(opts)
}

// Publisher publishes completed run summaries to an MQTT topic so
// downstream dashboards can consume them without touching the engine.
type Publisher struct {
	cli   pahoClient
	topic string
	qos   byte
	log   logger.Logger
}

// NewPublisher connects to the MQTT broker.
func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.SetDefaults()
	logg := logger.New("mqtt-publisher")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		logg.Infof("MQTT connected")
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		logg.Errorf("connection lost: %v", err)
	}

	c := newMQTTClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}
	return &Publisher{cli: c, topic: cfg.Topic, qos: cfg.QoS, log: logg}, nil
}

// runPayload is the wire format of a published run.
type runPayload struct {
	RunID            string    `json:"run_id"`
	Cooling          string    `json:"cooling"`
	PeakTempC        float64   `json:"peak_temp_c"`
	AvgEfficiencyPct float64   `json:"avg_efficiency_pct"`
	Risk             string    `json:"risk"`
	Time             time.Time `json:"time"`
}

// PublishRun publishes the summary of a completed run.
func (p *Publisher) PublishRun(res coremetrics.RunResult) error {
	payload, err := json.Marshal(runPayload{
		RunID:            res.RunID,
		Cooling:          res.Config.Cooling.String(),
		PeakTempC:        res.Summary.PeakTempC,
		AvgEfficiencyPct: res.Summary.AvgEfficiencyPct,
		Risk:             res.Summary.Risk.String(),
		Time:             res.Time,
	})
	if err != nil {
		return err
	}
	token := p.cli.Publish(p.topic, p.qos, false, payload)
	if token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Close disconnects from the broker.
func (p *Publisher) Close() {
	if p.cli != nil && p.cli.IsConnected() {
		p.cli.Disconnect(250)
	}
}
