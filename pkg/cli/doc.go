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

// Package cli implements the sysmind command-line interface.
//
// # Commands
//
// snapshot - Capture a host snapshot:
//
//	sysmind snapshot [--output TARGET] [--format yaml|json|table] [--primary-interface NAME] [--summary]
//
// Builds one HostSnapshot (identity, resources, network, inventory, name
// resolution) and writes it to TARGET. TARGET may be a file path,
// cm://namespace/name for a Kubernetes ConfigMap, or oci://registry/repo[:tag]
// for an OCI artifact. Output defaults to stdout in YAML.
//
// sysctl - Read and write kernel tunables:
//
//	sysmind sysctl list [--filter PATTERN]... [--format yaml|json]
//	sysmind sysctl get NAME
//	sysmind sysctl set NAME VALUE [--no-write-through] [--no-backup] [--config-path PATH]
//	sysmind sysctl sync [--config-path PATH]
//
// set runs the backup, rewrite and apply sequence unless --no-write-through
// is given. sync rewrites the config file from the live listing.
//
// serve - Run the HTTP API in the foreground:
//
//	sysmind serve [--port N] [--allow-writes]
//
// # Global Flags
//
//	--config      config file (default $HOME/.sysmind.yaml, then ./.sysmind.yaml)
//	--log-level   debug, info, warn or error
//
// Configuration precedence is flag, then environment, then config file, then
// built-in defaults.
package cli
