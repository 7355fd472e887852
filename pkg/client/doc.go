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

// Package client is a typed HTTP client for the people API.
//
//	c, err := client.New("http://localhost:8080")
//	if err != nil {
//	    return err
//	}
//	p, err := c.Get(ctx, 1)
//	if errors.IsNotFound(err) {
//	    ...
//	}
//
// Non-2xx responses are returned as *errors.StructuredError carrying the
// server's error code, message and request ID when the server sent one.
package client
