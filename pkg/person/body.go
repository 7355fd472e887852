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

package person

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/NVIDIA/people/pkg/serializer"
)

// ParsePersonFromBody decodes a single Person from a request body.
// The format follows contentType: JSON for application/json or an empty
// value, YAML for application/x-yaml, application/yaml and text/yaml.
// Unrecognized types are attempted as JSON. Unknown fields are rejected.
func ParsePersonFromBody(body io.Reader, contentType string) (*Person, error) {
	if body == nil {
		return nil, fmt.Errorf("request body cannot be nil")
	}

	format, ok := serializer.FormatFromContentType(contentType)
	if !ok {
		slog.Debug("unrecognized content type, decoding as JSON", "contentType", contentType)
	}

	r, err := serializer.NewReader(format, body)
	if err != nil {
		return nil, err
	}

	var p Person
	if err := r.Deserialize(&p); err != nil {
		if !ok {
			return nil, fmt.Errorf("unsupported content type %q and failed to parse as JSON: %w", contentType, err)
		}
		return nil, err
	}
	return &p, nil
}
