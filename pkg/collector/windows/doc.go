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

// Package windows provides the Windows service and hardware providers.
//
// Data is read through PowerShell with results emitted as CSV, which keeps
// quoting of display names intact:
//
//	Get-Service | Select-Object Name,Status,DisplayName | ConvertTo-Csv -NoTypeInformation
//	Get-CimInstance Win32_PnPEntity | Select-Object PNPDeviceID,Manufacturer,Name | ConvertTo-Csv -NoTypeInformation
//
// PCI and USB devices are both derived from the PnP entity list: PCI IDs
// come from VEN_xxxx&DEV_xxxx and USB IDs from VID_xxxx&PID_xxxx.
package windows
