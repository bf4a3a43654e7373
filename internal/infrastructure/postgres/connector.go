package postgres

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/pkg/config"
)

const releaseTimeout = 3 * time.Second

// Connector abre una conexión PostgreSQL nueva por operación; no hay pool ni reutilización.
type Connector struct {
	connCfg   *pgx.ConnConfig
	opTimeout time.Duration
	log       zerolog.Logger
}

// NewConnector parsea el DSN una sola vez. Con DB_SSL_ROOT_CERT el certificado se lee aquí,
// así un archivo inexistente falla al arrancar y no en cada request.
func NewConnector(cfg config.DBConfig, log zerolog.Logger) (*Connector, error) {
	connCfg, err := pgx.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if cfg.ConnectTimeout > 0 {
		connCfg.ConnectTimeout = cfg.ConnectTimeout
	}
	if cfg.StatementTimeout > 0 {
		connCfg.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}
	if cfg.PreferIPv4 {
		connCfg.DialFunc = dialPreferIPv4
	}
	return &Connector{
		connCfg:   connCfg,
		opTimeout: cfg.OperationTimeout,
		log:       log,
	}, nil
}

// Ping abre y cierra una conexión; se usa al arrancar solo para informar.
func (c *Connector) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	conn, err := c.connect(ctx)
	if err != nil {
		return err
	}
	defer c.release(conn)
	return conn.Ping(ctx)
}

func (c *Connector) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.opTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.opTimeout)
}

// connect envuelve cualquier fallo de conexión en domain.ErrUnavailable.
func (c *Connector) connect(ctx context.Context) (*pgx.Conn, error) {
	conn, err := pgx.ConnectConfig(ctx, c.connCfg)
	if err != nil {
		c.log.Warn().Err(err).Str("host", c.connCfg.Host).Msg("no se pudo abrir conexión a PostgreSQL")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return conn, nil
}

// release cierra con un contexto propio: el de la operación puede haber expirado ya.
func (c *Connector) release(conn *pgx.Conn) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	if err := conn.Close(ctx); err != nil {
		c.log.Error().Err(err).Msg("cerrar conexión")
	}
}

// dialPreferIPv4 fuerza tcp4 cuando el host resuelve a IPv4 (Docker suele no tener IPv6).
func dialPreferIPv4(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{KeepAlive: 5 * time.Minute}
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}
	ipv4, err := resolveIPv4(ctx, host)
	if err != nil {
		return dialer.DialContext(ctx, network, addr)
	}
	return dialer.DialContext(ctx, "tcp4", net.JoinHostPort(ipv4, port))
}

// resolveIPv4 resuelve un hostname a su primera dirección IPv4.
func resolveIPv4(ctx context.Context, host string) (string, error) {
	if ip := net.ParseIP(host); ip != nil {
		if ip.To4() != nil {
			return host, nil
		}
		return "", errors.New("es IPv6")
	}
	ips, err := net.DefaultResolver.LookupIP(ctx, "ip4", host)
	if err != nil {
		return "", err
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return "", errors.New("no hay IPv4")
}
