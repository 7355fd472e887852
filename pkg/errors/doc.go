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

// Package errors defines the structured error type shared by the people
// service packages.
//
// A StructuredError carries an ErrorCode that the HTTP layer maps to a status
// code, a human-readable message, an optional cause, and optional context
// that ends up in the "details" object of an error response.
//
//	p, found, err := store.Get(id)
//	if err != nil {
//	    return errors.WrapWithContext(errors.ErrCodeInternal,
//	        "failed to read person", err, map[string]any{"id": id})
//	}
//
// Use CodeOf to recover the code from any error chain; errors that are not
// structured report ErrCodeInternal.
package errors
