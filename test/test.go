// Manual smoke client for a running server.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

func main() {
	client := http.Client{}
	baseurl := "http://localhost:7320/api"

	body := bytes.NewBufferString(`{"uploaderName":"smoke","uploaderEmail":"smoke@example.com"}`)
	req, err := http.NewRequestWithContext(context.Background(), "POST", baseurl+"/Uploader/Add", body)
	if err != nil {
		fmt.Println("can't create request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("err:", err)
		return
	}
	data, _ := io.ReadAll(resp.Body)
	fmt.Println(resp.Status, resp.Header.Get("Location"))
	fmt.Println(string(data))
	resp.Body.Close()

	listReq, err := http.NewRequestWithContext(context.Background(), "GET", baseurl+"/Project/List", http.NoBody)
	if err != nil {
		fmt.Println("can't create request")
		return
	}
	listResp, err := client.Do(listReq)
	if err != nil {
		fmt.Println("err:", err)
		return
	}
	data, _ = io.ReadAll(listResp.Body)
	fmt.Println(string(data))
	listResp.Body.Close()
}
