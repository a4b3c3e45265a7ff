// SPDX-License-Identifier: Apache-2.0
package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"contractlang/internal/lspsrv"
)

const lsName = "contractlang"

func main() {
	commonlog.Configure(1, nil)

	contractHandler := lspsrv.NewHandler()

	handler := protocol.Handler{
		Initialize:            contractHandler.Initialize,
		Initialized:           contractHandler.Initialized,
		Shutdown:              contractHandler.Shutdown,
		TextDocumentDidOpen:   contractHandler.TextDocumentDidOpen,
		TextDocumentDidClose:  contractHandler.TextDocumentDidClose,
		TextDocumentDidChange: contractHandler.TextDocumentDidChange,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting contractlang LSP server...")

	if err := s.RunStdio(); err != nil {
		log.Println("Error starting contractlang LSP server:", err)
		os.Exit(1)
	}
}
