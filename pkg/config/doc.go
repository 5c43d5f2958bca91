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

// Package config loads sysmind settings from a YAML file and the environment.
//
// Search order when no explicit path is given:
//
//	$HOME/.sysmind.yaml
//	./.sysmind.yaml
//
// A missing default file is not an error; an explicit path that does not exist is.
// Environment variables override file values:
//
//	SYSMIND_SYSCTL_CONFIG      sysctl.configPath
//	SYSMIND_WRITE_THROUGH      sysctl.writeThrough
//	SYSMIND_PRIMARY_INTERFACE  snapshot.primaryInterface
//	PORT                       server.port
//	SHUTDOWN_TIMEOUT_SECONDS   server.shutdownTimeout
//
// Example file:
//
//	sysctl:
//	  configPath: /etc/sysctl.d/99-sysmind.conf
//	  writeThrough: false
//	snapshot:
//	  primaryInterface: ens5
//	  commandTimeout: 15s
//	server:
//	  port: 9090
//	  readOnly: true
package config
