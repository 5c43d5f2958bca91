// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package network

import (
	"context"
	"fmt"
	"log/slog"

	gnet "github.com/shirou/gopsutil/v3/net"

	"github.com/mchmarny/sysmind/pkg/inventory"
)

const (
	StatusListen      = "LISTEN"
	StatusEstablished = "ESTABLISHED"
	StatusCloseWait   = "CLOSE_WAIT"
	StatusClose       = "CLOSE"
	StatusNone        = "NONE"
)

// ConnectionsFunc lists sockets of the given kind.
type ConnectionsFunc func(ctx context.Context, kind string) ([]gnet.ConnectionStat, error)

// ConnectionsProvider lists and categorizes inet sockets.
type ConnectionsProvider struct {
	List ConnectionsFunc
}

// NewConnectionsProvider creates a provider backed by gopsutil.
func NewConnectionsProvider() *ConnectionsProvider {
	return &ConnectionsProvider{List: gnet.ConnectionsWithContext}
}

// Collect returns sockets partitioned by state.
func (p *ConnectionsProvider) Collect(ctx context.Context) (*inventory.Connections, error) {
	stats, err := p.List(ctx, "inet")
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return Categorize(stats), nil
}

// Categorize partitions sockets into listening, established, and closed
// buckets. Sockets in other states are dropped.
func Categorize(stats []gnet.ConnectionStat) *inventory.Connections {
	conns := inventory.NewConnections()

	for _, s := range stats {
		switch s.Status {
		case StatusListen:
			conns.Listening = append(conns.Listening, inventory.Connection{
				LocalIP:   s.Laddr.IP,
				LocalPort: s.Laddr.Port,
				Status:    s.Status,
			})
		case StatusEstablished:
			conns.Established = append(conns.Established, toConnection(s))
		case StatusCloseWait, StatusClose, StatusNone, "":
			conns.Closed = append(conns.Closed, toConnection(s))
		default:
			slog.Debug("skipping connection in transitional state",
				slog.String("status", s.Status),
				slog.String("local", fmt.Sprintf("%s:%d", s.Laddr.IP, s.Laddr.Port)))
		}
	}

	return conns
}

func toConnection(s gnet.ConnectionStat) inventory.Connection {
	c := inventory.Connection{
		LocalIP:   s.Laddr.IP,
		LocalPort: s.Laddr.Port,
		Status:    s.Status,
	}
	if c.Status == "" {
		c.Status = StatusNone
	}
	if s.Raddr.IP != "" {
		c.RemoteIP = inventory.Ptr(s.Raddr.IP)
		c.RemotePort = inventory.Ptr(s.Raddr.Port)
	}
	return c
}
