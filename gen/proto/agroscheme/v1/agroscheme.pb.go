// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: agroscheme/v1/agroscheme.proto

package agroschemepb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Farmer struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FarmerCode    string                 `protobuf:"bytes,2,opt,name=farmer_code,json=farmerCode,proto3" json:"farmer_code,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Phone         string                 `protobuf:"bytes,4,opt,name=phone,proto3" json:"phone,omitempty"`
	Village       string                 `protobuf:"bytes,5,opt,name=village,proto3" json:"village,omitempty"`
	District      string                 `protobuf:"bytes,6,opt,name=district,proto3" json:"district,omitempty"`
	AutoApply     bool                   `protobuf:"varint,7,opt,name=auto_apply,json=autoApply,proto3" json:"auto_apply,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Farmer) Reset() {
	*x = Farmer{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Farmer) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Farmer) ProtoMessage() {}

func (x *Farmer) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Farmer.ProtoReflect.Descriptor instead.
func (*Farmer) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{0}
}

func (x *Farmer) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Farmer) GetFarmerCode() string {
	if x != nil {
		return x.FarmerCode
	}
	return ""
}

func (x *Farmer) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Farmer) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *Farmer) GetVillage() string {
	if x != nil {
		return x.Village
	}
	return ""
}

func (x *Farmer) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *Farmer) GetAutoApply() bool {
	if x != nil {
		return x.AutoApply
	}
	return false
}

func (x *Farmer) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Farmer) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateFarmerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerCode    string                 `protobuf:"bytes,1,opt,name=farmer_code,json=farmerCode,proto3" json:"farmer_code,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Phone         string                 `protobuf:"bytes,3,opt,name=phone,proto3" json:"phone,omitempty"`
	Village       string                 `protobuf:"bytes,4,opt,name=village,proto3" json:"village,omitempty"`
	District      string                 `protobuf:"bytes,5,opt,name=district,proto3" json:"district,omitempty"`
	AutoApply     bool                   `protobuf:"varint,6,opt,name=auto_apply,json=autoApply,proto3" json:"auto_apply,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFarmerRequest) Reset() {
	*x = CreateFarmerRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFarmerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFarmerRequest) ProtoMessage() {}

func (x *CreateFarmerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFarmerRequest.ProtoReflect.Descriptor instead.
func (*CreateFarmerRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{1}
}

func (x *CreateFarmerRequest) GetFarmerCode() string {
	if x != nil {
		return x.FarmerCode
	}
	return ""
}

func (x *CreateFarmerRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFarmerRequest) GetPhone() string {
	if x != nil {
		return x.Phone
	}
	return ""
}

func (x *CreateFarmerRequest) GetVillage() string {
	if x != nil {
		return x.Village
	}
	return ""
}

func (x *CreateFarmerRequest) GetDistrict() string {
	if x != nil {
		return x.District
	}
	return ""
}

func (x *CreateFarmerRequest) GetAutoApply() bool {
	if x != nil {
		return x.AutoApply
	}
	return false
}

type CreateFarmerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farmer        *Farmer                `protobuf:"bytes,1,opt,name=farmer,proto3" json:"farmer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFarmerResponse) Reset() {
	*x = CreateFarmerResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFarmerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFarmerResponse) ProtoMessage() {}

func (x *CreateFarmerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFarmerResponse.ProtoReflect.Descriptor instead.
func (*CreateFarmerResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{2}
}

func (x *CreateFarmerResponse) GetFarmer() *Farmer {
	if x != nil {
		return x.Farmer
	}
	return nil
}

type GetFarmerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFarmerRequest) Reset() {
	*x = GetFarmerRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFarmerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFarmerRequest) ProtoMessage() {}

func (x *GetFarmerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFarmerRequest.ProtoReflect.Descriptor instead.
func (*GetFarmerRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{3}
}

func (x *GetFarmerRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

type GetFarmerResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farmer        *Farmer                `protobuf:"bytes,1,opt,name=farmer,proto3" json:"farmer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFarmerResponse) Reset() {
	*x = GetFarmerResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFarmerResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFarmerResponse) ProtoMessage() {}

func (x *GetFarmerResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFarmerResponse.ProtoReflect.Descriptor instead.
func (*GetFarmerResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{4}
}

func (x *GetFarmerResponse) GetFarmer() *Farmer {
	if x != nil {
		return x.Farmer
	}
	return nil
}

type ListFarmersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFarmersRequest) Reset() {
	*x = ListFarmersRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFarmersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFarmersRequest) ProtoMessage() {}

func (x *ListFarmersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFarmersRequest.ProtoReflect.Descriptor instead.
func (*ListFarmersRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{5}
}

type ListFarmersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farmers       []*Farmer              `protobuf:"bytes,1,rep,name=farmers,proto3" json:"farmers,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFarmersResponse) Reset() {
	*x = ListFarmersResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFarmersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFarmersResponse) ProtoMessage() {}

func (x *ListFarmersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFarmersResponse.ProtoReflect.Descriptor instead.
func (*ListFarmersResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{6}
}

func (x *ListFarmersResponse) GetFarmers() []*Farmer {
	if x != nil {
		return x.Farmers
	}
	return nil
}

type SetAutoApplyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	Enabled       bool                   `protobuf:"varint,2,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAutoApplyRequest) Reset() {
	*x = SetAutoApplyRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAutoApplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAutoApplyRequest) ProtoMessage() {}

func (x *SetAutoApplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAutoApplyRequest.ProtoReflect.Descriptor instead.
func (*SetAutoApplyRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{7}
}

func (x *SetAutoApplyRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *SetAutoApplyRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type SetAutoApplyResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farmer        *Farmer                `protobuf:"bytes,1,opt,name=farmer,proto3" json:"farmer,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetAutoApplyResponse) Reset() {
	*x = SetAutoApplyResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetAutoApplyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetAutoApplyResponse) ProtoMessage() {}

func (x *SetAutoApplyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetAutoApplyResponse.ProtoReflect.Descriptor instead.
func (*SetAutoApplyResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{8}
}

func (x *SetAutoApplyResponse) GetFarmer() *Farmer {
	if x != nil {
		return x.Farmer
	}
	return nil
}

type Notification struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FarmerId         string                 `protobuf:"bytes,2,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	Title            string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	Message          string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	NotificationType string                 `protobuf:"bytes,5,opt,name=notification_type,json=notificationType,proto3" json:"notification_type,omitempty"`
	Read             bool                   `protobuf:"varint,6,opt,name=read,proto3" json:"read,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Notification) Reset() {
	*x = Notification{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notification) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notification) ProtoMessage() {}

func (x *Notification) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notification.ProtoReflect.Descriptor instead.
func (*Notification) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{9}
}

func (x *Notification) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Notification) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *Notification) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *Notification) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *Notification) GetNotificationType() string {
	if x != nil {
		return x.NotificationType
	}
	return ""
}

func (x *Notification) GetRead() bool {
	if x != nil {
		return x.Read
	}
	return false
}

func (x *Notification) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ListNotificationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	UnreadOnly    bool                   `protobuf:"varint,2,opt,name=unread_only,json=unreadOnly,proto3" json:"unread_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsRequest) Reset() {
	*x = ListNotificationsRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsRequest) ProtoMessage() {}

func (x *ListNotificationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsRequest.ProtoReflect.Descriptor instead.
func (*ListNotificationsRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{10}
}

func (x *ListNotificationsRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *ListNotificationsRequest) GetUnreadOnly() bool {
	if x != nil {
		return x.UnreadOnly
	}
	return false
}

type ListNotificationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notifications []*Notification        `protobuf:"bytes,1,rep,name=notifications,proto3" json:"notifications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNotificationsResponse) Reset() {
	*x = ListNotificationsResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNotificationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNotificationsResponse) ProtoMessage() {}

func (x *ListNotificationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNotificationsResponse.ProtoReflect.Descriptor instead.
func (*ListNotificationsResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{11}
}

func (x *ListNotificationsResponse) GetNotifications() []*Notification {
	if x != nil {
		return x.Notifications
	}
	return nil
}

type MarkNotificationReadRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	NotificationId string                 `protobuf:"bytes,1,opt,name=notification_id,json=notificationId,proto3" json:"notification_id,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *MarkNotificationReadRequest) Reset() {
	*x = MarkNotificationReadRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadRequest) ProtoMessage() {}

func (x *MarkNotificationReadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadRequest.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{12}
}

func (x *MarkNotificationReadRequest) GetNotificationId() string {
	if x != nil {
		return x.NotificationId
	}
	return ""
}

type MarkNotificationReadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MarkNotificationReadResponse) Reset() {
	*x = MarkNotificationReadResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MarkNotificationReadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkNotificationReadResponse) ProtoMessage() {}

func (x *MarkNotificationReadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkNotificationReadResponse.ProtoReflect.Descriptor instead.
func (*MarkNotificationReadResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{13}
}

type Scheme struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	BenefitAmount float64                `protobuf:"fixed64,4,opt,name=benefit_amount,json=benefitAmount,proto3" json:"benefit_amount,omitempty"`
	// Criteria document as JSON text, validated server-side.
	CriteriaJson      string   `protobuf:"bytes,5,opt,name=criteria_json,json=criteriaJson,proto3" json:"criteria_json,omitempty"`
	RequiredDocuments []string `protobuf:"bytes,6,rep,name=required_documents,json=requiredDocuments,proto3" json:"required_documents,omitempty"`
	Active            bool     `protobuf:"varint,7,opt,name=active,proto3" json:"active,omitempty"`
	CreatedAt         string   `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt         string   `protobuf:"bytes,9,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Scheme) Reset() {
	*x = Scheme{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Scheme) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Scheme) ProtoMessage() {}

func (x *Scheme) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Scheme.ProtoReflect.Descriptor instead.
func (*Scheme) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{14}
}

func (x *Scheme) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Scheme) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Scheme) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Scheme) GetBenefitAmount() float64 {
	if x != nil {
		return x.BenefitAmount
	}
	return 0
}

func (x *Scheme) GetCriteriaJson() string {
	if x != nil {
		return x.CriteriaJson
	}
	return ""
}

func (x *Scheme) GetRequiredDocuments() []string {
	if x != nil {
		return x.RequiredDocuments
	}
	return nil
}

func (x *Scheme) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

func (x *Scheme) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Scheme) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateSchemeRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Name              string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Description       string                 `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
	BenefitAmount     float64                `protobuf:"fixed64,3,opt,name=benefit_amount,json=benefitAmount,proto3" json:"benefit_amount,omitempty"`
	CriteriaJson      string                 `protobuf:"bytes,4,opt,name=criteria_json,json=criteriaJson,proto3" json:"criteria_json,omitempty"`
	RequiredDocuments []string               `protobuf:"bytes,5,rep,name=required_documents,json=requiredDocuments,proto3" json:"required_documents,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *CreateSchemeRequest) Reset() {
	*x = CreateSchemeRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSchemeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSchemeRequest) ProtoMessage() {}

func (x *CreateSchemeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSchemeRequest.ProtoReflect.Descriptor instead.
func (*CreateSchemeRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{15}
}

func (x *CreateSchemeRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateSchemeRequest) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *CreateSchemeRequest) GetBenefitAmount() float64 {
	if x != nil {
		return x.BenefitAmount
	}
	return 0
}

func (x *CreateSchemeRequest) GetCriteriaJson() string {
	if x != nil {
		return x.CriteriaJson
	}
	return ""
}

func (x *CreateSchemeRequest) GetRequiredDocuments() []string {
	if x != nil {
		return x.RequiredDocuments
	}
	return nil
}

type CreateSchemeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scheme        *Scheme                `protobuf:"bytes,1,opt,name=scheme,proto3" json:"scheme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateSchemeResponse) Reset() {
	*x = CreateSchemeResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateSchemeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateSchemeResponse) ProtoMessage() {}

func (x *CreateSchemeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateSchemeResponse.ProtoReflect.Descriptor instead.
func (*CreateSchemeResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{16}
}

func (x *CreateSchemeResponse) GetScheme() *Scheme {
	if x != nil {
		return x.Scheme
	}
	return nil
}

type GetSchemeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchemeId      string                 `protobuf:"bytes,1,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSchemeRequest) Reset() {
	*x = GetSchemeRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSchemeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSchemeRequest) ProtoMessage() {}

func (x *GetSchemeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSchemeRequest.ProtoReflect.Descriptor instead.
func (*GetSchemeRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{17}
}

func (x *GetSchemeRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

type GetSchemeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scheme        *Scheme                `protobuf:"bytes,1,opt,name=scheme,proto3" json:"scheme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetSchemeResponse) Reset() {
	*x = GetSchemeResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetSchemeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetSchemeResponse) ProtoMessage() {}

func (x *GetSchemeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetSchemeResponse.ProtoReflect.Descriptor instead.
func (*GetSchemeResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{18}
}

func (x *GetSchemeResponse) GetScheme() *Scheme {
	if x != nil {
		return x.Scheme
	}
	return nil
}

type ListSchemesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActiveOnly    bool                   `protobuf:"varint,1,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchemesRequest) Reset() {
	*x = ListSchemesRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchemesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchemesRequest) ProtoMessage() {}

func (x *ListSchemesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchemesRequest.ProtoReflect.Descriptor instead.
func (*ListSchemesRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{19}
}

func (x *ListSchemesRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

type ListSchemesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Schemes       []*Scheme              `protobuf:"bytes,1,rep,name=schemes,proto3" json:"schemes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSchemesResponse) Reset() {
	*x = ListSchemesResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSchemesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSchemesResponse) ProtoMessage() {}

func (x *ListSchemesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSchemesResponse.ProtoReflect.Descriptor instead.
func (*ListSchemesResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{20}
}

func (x *ListSchemesResponse) GetSchemes() []*Scheme {
	if x != nil {
		return x.Schemes
	}
	return nil
}

type SetSchemeActiveRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchemeId      string                 `protobuf:"bytes,1,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	Active        bool                   `protobuf:"varint,2,opt,name=active,proto3" json:"active,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSchemeActiveRequest) Reset() {
	*x = SetSchemeActiveRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSchemeActiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSchemeActiveRequest) ProtoMessage() {}

func (x *SetSchemeActiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSchemeActiveRequest.ProtoReflect.Descriptor instead.
func (*SetSchemeActiveRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{21}
}

func (x *SetSchemeActiveRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

func (x *SetSchemeActiveRequest) GetActive() bool {
	if x != nil {
		return x.Active
	}
	return false
}

type SetSchemeActiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scheme        *Scheme                `protobuf:"bytes,1,opt,name=scheme,proto3" json:"scheme,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetSchemeActiveResponse) Reset() {
	*x = SetSchemeActiveResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetSchemeActiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetSchemeActiveResponse) ProtoMessage() {}

func (x *SetSchemeActiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetSchemeActiveResponse.ProtoReflect.Descriptor instead.
func (*SetSchemeActiveResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{22}
}

func (x *SetSchemeActiveResponse) GetScheme() *Scheme {
	if x != nil {
		return x.Scheme
	}
	return nil
}

type FarmerDocument struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Id       string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FarmerId string                 `protobuf:"bytes,2,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	DocType  string                 `protobuf:"bytes,3,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	// Extracted field-set as JSON text.
	FieldsJson           string  `protobuf:"bytes,4,opt,name=fields_json,json=fieldsJson,proto3" json:"fields_json,omitempty"`
	ExtractionConfidence float32 `protobuf:"fixed32,5,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	UploadedAt           string  `protobuf:"bytes,6,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *FarmerDocument) Reset() {
	*x = FarmerDocument{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FarmerDocument) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FarmerDocument) ProtoMessage() {}

func (x *FarmerDocument) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FarmerDocument.ProtoReflect.Descriptor instead.
func (*FarmerDocument) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{23}
}

func (x *FarmerDocument) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FarmerDocument) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *FarmerDocument) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *FarmerDocument) GetFieldsJson() string {
	if x != nil {
		return x.FieldsJson
	}
	return ""
}

func (x *FarmerDocument) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *FarmerDocument) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type SubmitDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	FarmerId string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	DocType  string                 `protobuf:"bytes,2,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	// Raw OCR text of the uploaded document.
	Text          string `protobuf:"bytes,3,opt,name=text,proto3" json:"text,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentRequest) Reset() {
	*x = SubmitDocumentRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentRequest) ProtoMessage() {}

func (x *SubmitDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentRequest.ProtoReflect.Descriptor instead.
func (*SubmitDocumentRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{24}
}

func (x *SubmitDocumentRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *SubmitDocumentRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *SubmitDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

type SubmitDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *FarmerDocument        `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitDocumentResponse) Reset() {
	*x = SubmitDocumentResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitDocumentResponse) ProtoMessage() {}

func (x *SubmitDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitDocumentResponse.ProtoReflect.Descriptor instead.
func (*SubmitDocumentResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{25}
}

func (x *SubmitDocumentResponse) GetDocument() *FarmerDocument {
	if x != nil {
		return x.Document
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{26}
}

func (x *ListDocumentsRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*FarmerDocument      `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{27}
}

func (x *ListDocumentsResponse) GetDocuments() []*FarmerDocument {
	if x != nil {
		return x.Documents
	}
	return nil
}

type Verdict struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Eligible             bool                   `protobuf:"varint,1,opt,name=eligible,proto3" json:"eligible,omitempty"`
	CriteriaMet          bool                   `protobuf:"varint,2,opt,name=criteria_met,json=criteriaMet,proto3" json:"criteria_met,omitempty"`
	MatchPercentage      float64                `protobuf:"fixed64,3,opt,name=match_percentage,json=matchPercentage,proto3" json:"match_percentage,omitempty"`
	MatchedCriteria      []string               `protobuf:"bytes,4,rep,name=matched_criteria,json=matchedCriteria,proto3" json:"matched_criteria,omitempty"`
	MissingCriteria      []string               `protobuf:"bytes,5,rep,name=missing_criteria,json=missingCriteria,proto3" json:"missing_criteria,omitempty"`
	SkippedCriteria      []string               `protobuf:"bytes,6,rep,name=skipped_criteria,json=skippedCriteria,proto3" json:"skipped_criteria,omitempty"`
	Reasons              []string               `protobuf:"bytes,7,rep,name=reasons,proto3" json:"reasons,omitempty"`
	MissingDocuments     []string               `protobuf:"bytes,8,rep,name=missing_documents,json=missingDocuments,proto3" json:"missing_documents,omitempty"`
	HasRequiredDocuments bool                   `protobuf:"varint,9,opt,name=has_required_documents,json=hasRequiredDocuments,proto3" json:"has_required_documents,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *Verdict) Reset() {
	*x = Verdict{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Verdict) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Verdict) ProtoMessage() {}

func (x *Verdict) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Verdict.ProtoReflect.Descriptor instead.
func (*Verdict) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{28}
}

func (x *Verdict) GetEligible() bool {
	if x != nil {
		return x.Eligible
	}
	return false
}

func (x *Verdict) GetCriteriaMet() bool {
	if x != nil {
		return x.CriteriaMet
	}
	return false
}

func (x *Verdict) GetMatchPercentage() float64 {
	if x != nil {
		return x.MatchPercentage
	}
	return 0
}

func (x *Verdict) GetMatchedCriteria() []string {
	if x != nil {
		return x.MatchedCriteria
	}
	return nil
}

func (x *Verdict) GetMissingCriteria() []string {
	if x != nil {
		return x.MissingCriteria
	}
	return nil
}

func (x *Verdict) GetSkippedCriteria() []string {
	if x != nil {
		return x.SkippedCriteria
	}
	return nil
}

func (x *Verdict) GetReasons() []string {
	if x != nil {
		return x.Reasons
	}
	return nil
}

func (x *Verdict) GetMissingDocuments() []string {
	if x != nil {
		return x.MissingDocuments
	}
	return nil
}

func (x *Verdict) GetHasRequiredDocuments() bool {
	if x != nil {
		return x.HasRequiredDocuments
	}
	return false
}

type StatusChange struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Status         string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Timestamp      string                 `protobuf:"bytes,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	ApprovedAmount float64                `protobuf:"fixed64,3,opt,name=approved_amount,json=approvedAmount,proto3" json:"approved_amount,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *StatusChange) Reset() {
	*x = StatusChange{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StatusChange) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StatusChange) ProtoMessage() {}

func (x *StatusChange) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StatusChange.ProtoReflect.Descriptor instead.
func (*StatusChange) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{29}
}

func (x *StatusChange) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *StatusChange) GetTimestamp() string {
	if x != nil {
		return x.Timestamp
	}
	return ""
}

func (x *StatusChange) GetApprovedAmount() float64 {
	if x != nil {
		return x.ApprovedAmount
	}
	return 0
}

type Application struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicationId  string                 `protobuf:"bytes,2,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	FarmerId       string                 `protobuf:"bytes,3,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	SchemeId       string                 `protobuf:"bytes,4,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	Status         string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Source         string                 `protobuf:"bytes,6,opt,name=source,proto3" json:"source,omitempty"`
	AppliedAmount  float64                `protobuf:"fixed64,7,opt,name=applied_amount,json=appliedAmount,proto3" json:"applied_amount,omitempty"`
	ApprovedAmount float64                `protobuf:"fixed64,8,opt,name=approved_amount,json=approvedAmount,proto3" json:"approved_amount,omitempty"`
	StatusHistory  []*StatusChange        `protobuf:"bytes,9,rep,name=status_history,json=statusHistory,proto3" json:"status_history,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt      string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Application) Reset() {
	*x = Application{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Application) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Application) ProtoMessage() {}

func (x *Application) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Application.ProtoReflect.Descriptor instead.
func (*Application) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{30}
}

func (x *Application) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Application) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *Application) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *Application) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

func (x *Application) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Application) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Application) GetAppliedAmount() float64 {
	if x != nil {
		return x.AppliedAmount
	}
	return 0
}

func (x *Application) GetApprovedAmount() float64 {
	if x != nil {
		return x.ApprovedAmount
	}
	return 0
}

func (x *Application) GetStatusHistory() []*StatusChange {
	if x != nil {
		return x.StatusHistory
	}
	return nil
}

func (x *Application) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Application) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EvaluateEligibilityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	SchemeId      string                 `protobuf:"bytes,2,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluateEligibilityRequest) Reset() {
	*x = EvaluateEligibilityRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateEligibilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateEligibilityRequest) ProtoMessage() {}

func (x *EvaluateEligibilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateEligibilityRequest.ProtoReflect.Descriptor instead.
func (*EvaluateEligibilityRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{31}
}

func (x *EvaluateEligibilityRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *EvaluateEligibilityRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

type EvaluateEligibilityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Verdict       *Verdict               `protobuf:"bytes,1,opt,name=verdict,proto3" json:"verdict,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluateEligibilityResponse) Reset() {
	*x = EvaluateEligibilityResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluateEligibilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluateEligibilityResponse) ProtoMessage() {}

func (x *EvaluateEligibilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluateEligibilityResponse.ProtoReflect.Descriptor instead.
func (*EvaluateEligibilityResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{32}
}

func (x *EvaluateEligibilityResponse) GetVerdict() *Verdict {
	if x != nil {
		return x.Verdict
	}
	return nil
}

type ManualApplyRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	SchemeId      string                 `protobuf:"bytes,2,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ManualApplyRequest) Reset() {
	*x = ManualApplyRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ManualApplyRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ManualApplyRequest) ProtoMessage() {}

func (x *ManualApplyRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ManualApplyRequest.ProtoReflect.Descriptor instead.
func (*ManualApplyRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{33}
}

func (x *ManualApplyRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *ManualApplyRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

type ManualApplyResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Applied        bool                   `protobuf:"varint,1,opt,name=applied,proto3" json:"applied,omitempty"`
	AlreadyApplied bool                   `protobuf:"varint,2,opt,name=already_applied,json=alreadyApplied,proto3" json:"already_applied,omitempty"`
	Application    *Application           `protobuf:"bytes,3,opt,name=application,proto3" json:"application,omitempty"`
	Verdict        *Verdict               `protobuf:"bytes,4,opt,name=verdict,proto3" json:"verdict,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ManualApplyResponse) Reset() {
	*x = ManualApplyResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ManualApplyResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ManualApplyResponse) ProtoMessage() {}

func (x *ManualApplyResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ManualApplyResponse.ProtoReflect.Descriptor instead.
func (*ManualApplyResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{34}
}

func (x *ManualApplyResponse) GetApplied() bool {
	if x != nil {
		return x.Applied
	}
	return false
}

func (x *ManualApplyResponse) GetAlreadyApplied() bool {
	if x != nil {
		return x.AlreadyApplied
	}
	return false
}

func (x *ManualApplyResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

func (x *ManualApplyResponse) GetVerdict() *Verdict {
	if x != nil {
		return x.Verdict
	}
	return nil
}

type SweepSchemeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchemeId      string                 `protobuf:"bytes,1,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SweepSchemeRequest) Reset() {
	*x = SweepSchemeRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SweepSchemeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SweepSchemeRequest) ProtoMessage() {}

func (x *SweepSchemeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SweepSchemeRequest.ProtoReflect.Descriptor instead.
func (*SweepSchemeRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{35}
}

func (x *SweepSchemeRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

type SweepSchemeResponse struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// The sweep runs asynchronously; queued reports acceptance only.
	Queued        bool `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SweepSchemeResponse) Reset() {
	*x = SweepSchemeResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SweepSchemeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SweepSchemeResponse) ProtoMessage() {}

func (x *SweepSchemeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SweepSchemeResponse.ProtoReflect.Descriptor instead.
func (*SweepSchemeResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{36}
}

func (x *SweepSchemeResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type UpdateApplicationStatusRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ApplicationId  string                 `protobuf:"bytes,1,opt,name=application_id,json=applicationId,proto3" json:"application_id,omitempty"`
	Status         string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ApprovedAmount *float64               `protobuf:"fixed64,3,opt,name=approved_amount,json=approvedAmount,proto3,oneof" json:"approved_amount,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UpdateApplicationStatusRequest) Reset() {
	*x = UpdateApplicationStatusRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateApplicationStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateApplicationStatusRequest) ProtoMessage() {}

func (x *UpdateApplicationStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateApplicationStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateApplicationStatusRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{37}
}

func (x *UpdateApplicationStatusRequest) GetApplicationId() string {
	if x != nil {
		return x.ApplicationId
	}
	return ""
}

func (x *UpdateApplicationStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UpdateApplicationStatusRequest) GetApprovedAmount() float64 {
	if x != nil && x.ApprovedAmount != nil {
		return *x.ApprovedAmount
	}
	return 0
}

type UpdateApplicationStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Application   *Application           `protobuf:"bytes,1,opt,name=application,proto3" json:"application,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateApplicationStatusResponse) Reset() {
	*x = UpdateApplicationStatusResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateApplicationStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateApplicationStatusResponse) ProtoMessage() {}

func (x *UpdateApplicationStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateApplicationStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateApplicationStatusResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{38}
}

func (x *UpdateApplicationStatusResponse) GetApplication() *Application {
	if x != nil {
		return x.Application
	}
	return nil
}

type ListApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmerId      string                 `protobuf:"bytes,1,opt,name=farmer_id,json=farmerId,proto3" json:"farmer_id,omitempty"`
	SchemeId      string                 `protobuf:"bytes,2,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsRequest) Reset() {
	*x = ListApplicationsRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsRequest) ProtoMessage() {}

func (x *ListApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{39}
}

func (x *ListApplicationsRequest) GetFarmerId() string {
	if x != nil {
		return x.FarmerId
	}
	return ""
}

func (x *ListApplicationsRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

func (x *ListApplicationsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ListApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applications  []*Application         `protobuf:"bytes,1,rep,name=applications,proto3" json:"applications,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicationsResponse) Reset() {
	*x = ListApplicationsResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicationsResponse) ProtoMessage() {}

func (x *ListApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{40}
}

func (x *ListApplicationsResponse) GetApplications() []*Application {
	if x != nil {
		return x.Applications
	}
	return nil
}

type ExportApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SchemeId      string                 `protobuf:"bytes,1,opt,name=scheme_id,json=schemeId,proto3" json:"scheme_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsRequest) Reset() {
	*x = ExportApplicationsRequest{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsRequest) ProtoMessage() {}

func (x *ExportApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ExportApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{41}
}

func (x *ExportApplicationsRequest) GetSchemeId() string {
	if x != nil {
		return x.SchemeId
	}
	return ""
}

type ExportApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportApplicationsResponse) Reset() {
	*x = ExportApplicationsResponse{}
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportApplicationsResponse) ProtoMessage() {}

func (x *ExportApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agroscheme_v1_agroscheme_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ExportApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_agroscheme_v1_agroscheme_proto_rawDescGZIP(), []int{42}
}

func (x *ExportApplicationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_agroscheme_v1_agroscheme_proto protoreflect.FileDescriptor

const file_agroscheme_v1_agroscheme_proto_rawDesc = "" +
	"\n" +
	"\x1eagroscheme/v1/agroscheme.proto\x12\ragroscheme.v1\"\xf6\x01\n" +
	"\x06Farmer\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vfarmer_code\x18\x02 \x01(\tR\n" +
	"farmerCode\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x14\n" +
	"\x05phone\x18\x04 \x01(\tR\x05phone\x12\x18\n" +
	"\avillage\x18\x05 \x01(\tR\avillage\x12\x1a\n" +
	"\bdistrict\x18\x06 \x01(\tR\bdistrict\x12\x1d\n" +
	"\n" +
	"auto_apply\x18\a \x01(\bR\tautoApply\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xb5\x01\n" +
	"\x13CreateFarmerRequest\x12\x1f\n" +
	"\vfarmer_code\x18\x01 \x01(\tR\n" +
	"farmerCode\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05phone\x18\x03 \x01(\tR\x05phone\x12\x18\n" +
	"\avillage\x18\x04 \x01(\tR\avillage\x12\x1a\n" +
	"\bdistrict\x18\x05 \x01(\tR\bdistrict\x12\x1d\n" +
	"\n" +
	"auto_apply\x18\x06 \x01(\bR\tautoApply\"E\n" +
	"\x14CreateFarmerResponse\x12-\n" +
	"\x06farmer\x18\x01 \x01(\v2\x15.agroscheme.v1.FarmerR\x06farmer\"/\n" +
	"\x10GetFarmerRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\"B\n" +
	"\x11GetFarmerResponse\x12-\n" +
	"\x06farmer\x18\x01 \x01(\v2\x15.agroscheme.v1.FarmerR\x06farmer\"\x14\n" +
	"\x12ListFarmersRequest\"F\n" +
	"\x13ListFarmersResponse\x12/\n" +
	"\afarmers\x18\x01 \x03(\v2\x15.agroscheme.v1.FarmerR\afarmers\"L\n" +
	"\x13SetAutoApplyRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x18\n" +
	"\aenabled\x18\x02 \x01(\bR\aenabled\"E\n" +
	"\x14SetAutoApplyResponse\x12-\n" +
	"\x06farmer\x18\x01 \x01(\v2\x15.agroscheme.v1.FarmerR\x06farmer\"\xcb\x01\n" +
	"\fNotification\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfarmer_id\x18\x02 \x01(\tR\bfarmerId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\x12+\n" +
	"\x11notification_type\x18\x05 \x01(\tR\x10notificationType\x12\x12\n" +
	"\x04read\x18\x06 \x01(\bR\x04read\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"X\n" +
	"\x18ListNotificationsRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x1f\n" +
	"\vunread_only\x18\x02 \x01(\bR\n" +
	"unreadOnly\"^\n" +
	"\x19ListNotificationsResponse\x12A\n" +
	"\rnotifications\x18\x01 \x03(\v2\x1b.agroscheme.v1.NotificationR\rnotifications\"F\n" +
	"\x1bMarkNotificationReadRequest\x12'\n" +
	"\x0fnotification_id\x18\x01 \x01(\tR\x0enotificationId\"\x1e\n" +
	"\x1cMarkNotificationReadResponse\"\x9f\x02\n" +
	"\x06Scheme\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x03 \x01(\tR\vdescription\x12%\n" +
	"\x0ebenefit_amount\x18\x04 \x01(\x01R\rbenefitAmount\x12#\n" +
	"\rcriteria_json\x18\x05 \x01(\tR\fcriteriaJson\x12-\n" +
	"\x12required_documents\x18\x06 \x03(\tR\x11requiredDocuments\x12\x16\n" +
	"\x06active\x18\a \x01(\bR\x06active\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\t \x01(\tR\tupdatedAt\"\xc6\x01\n" +
	"\x13CreateSchemeRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12 \n" +
	"\vdescription\x18\x02 \x01(\tR\vdescription\x12%\n" +
	"\x0ebenefit_amount\x18\x03 \x01(\x01R\rbenefitAmount\x12#\n" +
	"\rcriteria_json\x18\x04 \x01(\tR\fcriteriaJson\x12-\n" +
	"\x12required_documents\x18\x05 \x03(\tR\x11requiredDocuments\"E\n" +
	"\x14CreateSchemeResponse\x12-\n" +
	"\x06scheme\x18\x01 \x01(\v2\x15.agroscheme.v1.SchemeR\x06scheme\"/\n" +
	"\x10GetSchemeRequest\x12\x1b\n" +
	"\tscheme_id\x18\x01 \x01(\tR\bschemeId\"B\n" +
	"\x11GetSchemeResponse\x12-\n" +
	"\x06scheme\x18\x01 \x01(\v2\x15.agroscheme.v1.SchemeR\x06scheme\"5\n" +
	"\x12ListSchemesRequest\x12\x1f\n" +
	"\vactive_only\x18\x01 \x01(\bR\n" +
	"activeOnly\"F\n" +
	"\x13ListSchemesResponse\x12/\n" +
	"\aschemes\x18\x01 \x03(\v2\x15.agroscheme.v1.SchemeR\aschemes\"M\n" +
	"\x16SetSchemeActiveRequest\x12\x1b\n" +
	"\tscheme_id\x18\x01 \x01(\tR\bschemeId\x12\x16\n" +
	"\x06active\x18\x02 \x01(\bR\x06active\"H\n" +
	"\x17SetSchemeActiveResponse\x12-\n" +
	"\x06scheme\x18\x01 \x01(\v2\x15.agroscheme.v1.SchemeR\x06scheme\"\xcf\x01\n" +
	"\x0eFarmerDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1b\n" +
	"\tfarmer_id\x18\x02 \x01(\tR\bfarmerId\x12\x19\n" +
	"\bdoc_type\x18\x03 \x01(\tR\adocType\x12\x1f\n" +
	"\vfields_json\x18\x04 \x01(\tR\n" +
	"fieldsJson\x123\n" +
	"\x15extraction_confidence\x18\x05 \x01(\x02R\x14extractionConfidence\x12\x1f\n" +
	"\vuploaded_at\x18\x06 \x01(\tR\n" +
	"uploadedAt\"c\n" +
	"\x15SubmitDocumentRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x19\n" +
	"\bdoc_type\x18\x02 \x01(\tR\adocType\x12\x12\n" +
	"\x04text\x18\x03 \x01(\tR\x04text\"S\n" +
	"\x16SubmitDocumentResponse\x129\n" +
	"\bdocument\x18\x01 \x01(\v2\x1d.agroscheme.v1.FarmerDocumentR\bdocument\"3\n" +
	"\x14ListDocumentsRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\"T\n" +
	"\x15ListDocumentsResponse\x12;\n" +
	"\tdocuments\x18\x01 \x03(\v2\x1d.agroscheme.v1.FarmerDocumentR\tdocuments\"\xf1\x02\n" +
	"\aVerdict\x12\x1a\n" +
	"\beligible\x18\x01 \x01(\bR\beligible\x12!\n" +
	"\fcriteria_met\x18\x02 \x01(\bR\vcriteriaMet\x12)\n" +
	"\x10match_percentage\x18\x03 \x01(\x01R\x0fmatchPercentage\x12)\n" +
	"\x10matched_criteria\x18\x04 \x03(\tR\x0fmatchedCriteria\x12)\n" +
	"\x10missing_criteria\x18\x05 \x03(\tR\x0fmissingCriteria\x12)\n" +
	"\x10skipped_criteria\x18\x06 \x03(\tR\x0fskippedCriteria\x12\x18\n" +
	"\areasons\x18\a \x03(\tR\areasons\x12+\n" +
	"\x11missing_documents\x18\b \x03(\tR\x10missingDocuments\x124\n" +
	"\x16has_required_documents\x18\t \x01(\bR\x14hasRequiredDocuments\"m\n" +
	"\fStatusChange\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x1c\n" +
	"\ttimestamp\x18\x02 \x01(\tR\ttimestamp\x12'\n" +
	"\x0fapproved_amount\x18\x03 \x01(\x01R\x0eapprovedAmount\"\x80\x03\n" +
	"\vApplication\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12%\n" +
	"\x0eapplication_id\x18\x02 \x01(\tR\rapplicationId\x12\x1b\n" +
	"\tfarmer_id\x18\x03 \x01(\tR\bfarmerId\x12\x1b\n" +
	"\tscheme_id\x18\x04 \x01(\tR\bschemeId\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x16\n" +
	"\x06source\x18\x06 \x01(\tR\x06source\x12%\n" +
	"\x0eapplied_amount\x18\a \x01(\x01R\rappliedAmount\x12'\n" +
	"\x0fapproved_amount\x18\b \x01(\x01R\x0eapprovedAmount\x12B\n" +
	"\x0estatus_history\x18\t \x03(\v2\x1b.agroscheme.v1.StatusChangeR\rstatusHistory\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"V\n" +
	"\x1aEvaluateEligibilityRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x1b\n" +
	"\tscheme_id\x18\x02 \x01(\tR\bschemeId\"O\n" +
	"\x1bEvaluateEligibilityResponse\x120\n" +
	"\averdict\x18\x01 \x01(\v2\x16.agroscheme.v1.VerdictR\averdict\"N\n" +
	"\x12ManualApplyRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x1b\n" +
	"\tscheme_id\x18\x02 \x01(\tR\bschemeId\"\xc8\x01\n" +
	"\x13ManualApplyResponse\x12\x18\n" +
	"\aapplied\x18\x01 \x01(\bR\aapplied\x12'\n" +
	"\x0falready_applied\x18\x02 \x01(\bR\x0ealreadyApplied\x12<\n" +
	"\vapplication\x18\x03 \x01(\v2\x1a.agroscheme.v1.ApplicationR\vapplication\x120\n" +
	"\averdict\x18\x04 \x01(\v2\x16.agroscheme.v1.VerdictR\averdict\"1\n" +
	"\x12SweepSchemeRequest\x12\x1b\n" +
	"\tscheme_id\x18\x01 \x01(\tR\bschemeId\"-\n" +
	"\x13SweepSchemeResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"\xa1\x01\n" +
	"\x1eUpdateApplicationStatusRequest\x12%\n" +
	"\x0eapplication_id\x18\x01 \x01(\tR\rapplicationId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12,\n" +
	"\x0fapproved_amount\x18\x03 \x01(\x01H\x00R\x0eapprovedAmount\x88\x01\x01B\x12\n" +
	"\x10_approved_amount\"_\n" +
	"\x1fUpdateApplicationStatusResponse\x12<\n" +
	"\vapplication\x18\x01 \x01(\v2\x1a.agroscheme.v1.ApplicationR\vapplication\"k\n" +
	"\x17ListApplicationsRequest\x12\x1b\n" +
	"\tfarmer_id\x18\x01 \x01(\tR\bfarmerId\x12\x1b\n" +
	"\tscheme_id\x18\x02 \x01(\tR\bschemeId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\"Z\n" +
	"\x18ListApplicationsResponse\x12>\n" +
	"\fapplications\x18\x01 \x03(\v2\x1a.agroscheme.v1.ApplicationR\fapplications\"8\n" +
	"\x19ExportApplicationsRequest\x12\x1b\n" +
	"\tscheme_id\x18\x01 \x01(\tR\bschemeId\"0\n" +
	"\x1aExportApplicationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc1\x04\n" +
	"\x0eFarmersService\x12W\n" +
	"\fCreateFarmer\x12\".agroscheme.v1.CreateFarmerRequest\x1a#.agroscheme.v1.CreateFarmerResponse\x12N\n" +
	"\tGetFarmer\x12\x1f.agroscheme.v1.GetFarmerRequest\x1a .agroscheme.v1.GetFarmerResponse\x12T\n" +
	"\vListFarmers\x12!.agroscheme.v1.ListFarmersRequest\x1a\".agroscheme.v1.ListFarmersResponse\x12W\n" +
	"\fSetAutoApply\x12\".agroscheme.v1.SetAutoApplyRequest\x1a#.agroscheme.v1.SetAutoApplyResponse\x12f\n" +
	"\x11ListNotifications\x12'.agroscheme.v1.ListNotificationsRequest\x1a(.agroscheme.v1.ListNotificationsResponse\x12o\n" +
	"\x14MarkNotificationRead\x12*.agroscheme.v1.MarkNotificationReadRequest\x1a+.agroscheme.v1.MarkNotificationReadResponse2\xf1\x02\n" +
	"\x0eSchemesService\x12W\n" +
	"\fCreateScheme\x12\".agroscheme.v1.CreateSchemeRequest\x1a#.agroscheme.v1.CreateSchemeResponse\x12N\n" +
	"\tGetScheme\x12\x1f.agroscheme.v1.GetSchemeRequest\x1a .agroscheme.v1.GetSchemeResponse\x12T\n" +
	"\vListSchemes\x12!.agroscheme.v1.ListSchemesRequest\x1a\".agroscheme.v1.ListSchemesResponse\x12`\n" +
	"\x0fSetSchemeActive\x12%.agroscheme.v1.SetSchemeActiveRequest\x1a&.agroscheme.v1.SetSchemeActiveResponse2\xcd\x01\n" +
	"\x10DocumentsService\x12]\n" +
	"\x0eSubmitDocument\x12$.agroscheme.v1.SubmitDocumentRequest\x1a%.agroscheme.v1.SubmitDocumentResponse\x12Z\n" +
	"\rListDocuments\x12#.agroscheme.v1.ListDocumentsRequest\x1a$.agroscheme.v1.ListDocumentsResponse2\xf9\x04\n" +
	"\x13ApplicationsService\x12l\n" +
	"\x13EvaluateEligibility\x12).agroscheme.v1.EvaluateEligibilityRequest\x1a*.agroscheme.v1.EvaluateEligibilityResponse\x12T\n" +
	"\vManualApply\x12!.agroscheme.v1.ManualApplyRequest\x1a\".agroscheme.v1.ManualApplyResponse\x12T\n" +
	"\vSweepScheme\x12!.agroscheme.v1.SweepSchemeRequest\x1a\".agroscheme.v1.SweepSchemeResponse\x12x\n" +
	"\x17UpdateApplicationStatus\x12-.agroscheme.v1.UpdateApplicationStatusRequest\x1a..agroscheme.v1.UpdateApplicationStatusResponse\x12c\n" +
	"\x10ListApplications\x12&.agroscheme.v1.ListApplicationsRequest\x1a'.agroscheme.v1.ListApplicationsResponse\x12i\n" +
	"\x12ExportApplications\x12(.agroscheme.v1.ExportApplicationsRequest\x1a).agroscheme.v1.ExportApplicationsResponseBOZMgithub.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1;agroschemepbb\x06proto3"

var (
	file_agroscheme_v1_agroscheme_proto_rawDescOnce sync.Once
	file_agroscheme_v1_agroscheme_proto_rawDescData []byte
)

func file_agroscheme_v1_agroscheme_proto_rawDescGZIP() []byte {
	file_agroscheme_v1_agroscheme_proto_rawDescOnce.Do(func() {
		file_agroscheme_v1_agroscheme_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agroscheme_v1_agroscheme_proto_rawDesc), len(file_agroscheme_v1_agroscheme_proto_rawDesc)))
	})
	return file_agroscheme_v1_agroscheme_proto_rawDescData
}

var file_agroscheme_v1_agroscheme_proto_msgTypes = make([]protoimpl.MessageInfo, 43)
var file_agroscheme_v1_agroscheme_proto_goTypes = []any{
	(*Farmer)(nil),                          // 0: agroscheme.v1.Farmer
	(*CreateFarmerRequest)(nil),             // 1: agroscheme.v1.CreateFarmerRequest
	(*CreateFarmerResponse)(nil),            // 2: agroscheme.v1.CreateFarmerResponse
	(*GetFarmerRequest)(nil),                // 3: agroscheme.v1.GetFarmerRequest
	(*GetFarmerResponse)(nil),               // 4: agroscheme.v1.GetFarmerResponse
	(*ListFarmersRequest)(nil),              // 5: agroscheme.v1.ListFarmersRequest
	(*ListFarmersResponse)(nil),             // 6: agroscheme.v1.ListFarmersResponse
	(*SetAutoApplyRequest)(nil),             // 7: agroscheme.v1.SetAutoApplyRequest
	(*SetAutoApplyResponse)(nil),            // 8: agroscheme.v1.SetAutoApplyResponse
	(*Notification)(nil),                    // 9: agroscheme.v1.Notification
	(*ListNotificationsRequest)(nil),        // 10: agroscheme.v1.ListNotificationsRequest
	(*ListNotificationsResponse)(nil),       // 11: agroscheme.v1.ListNotificationsResponse
	(*MarkNotificationReadRequest)(nil),     // 12: agroscheme.v1.MarkNotificationReadRequest
	(*MarkNotificationReadResponse)(nil),    // 13: agroscheme.v1.MarkNotificationReadResponse
	(*Scheme)(nil),                          // 14: agroscheme.v1.Scheme
	(*CreateSchemeRequest)(nil),             // 15: agroscheme.v1.CreateSchemeRequest
	(*CreateSchemeResponse)(nil),            // 16: agroscheme.v1.CreateSchemeResponse
	(*GetSchemeRequest)(nil),                // 17: agroscheme.v1.GetSchemeRequest
	(*GetSchemeResponse)(nil),               // 18: agroscheme.v1.GetSchemeResponse
	(*ListSchemesRequest)(nil),              // 19: agroscheme.v1.ListSchemesRequest
	(*ListSchemesResponse)(nil),             // 20: agroscheme.v1.ListSchemesResponse
	(*SetSchemeActiveRequest)(nil),          // 21: agroscheme.v1.SetSchemeActiveRequest
	(*SetSchemeActiveResponse)(nil),         // 22: agroscheme.v1.SetSchemeActiveResponse
	(*FarmerDocument)(nil),                  // 23: agroscheme.v1.FarmerDocument
	(*SubmitDocumentRequest)(nil),           // 24: agroscheme.v1.SubmitDocumentRequest
	(*SubmitDocumentResponse)(nil),          // 25: agroscheme.v1.SubmitDocumentResponse
	(*ListDocumentsRequest)(nil),            // 26: agroscheme.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),           // 27: agroscheme.v1.ListDocumentsResponse
	(*Verdict)(nil),                         // 28: agroscheme.v1.Verdict
	(*StatusChange)(nil),                    // 29: agroscheme.v1.StatusChange
	(*Application)(nil),                     // 30: agroscheme.v1.Application
	(*EvaluateEligibilityRequest)(nil),      // 31: agroscheme.v1.EvaluateEligibilityRequest
	(*EvaluateEligibilityResponse)(nil),     // 32: agroscheme.v1.EvaluateEligibilityResponse
	(*ManualApplyRequest)(nil),              // 33: agroscheme.v1.ManualApplyRequest
	(*ManualApplyResponse)(nil),             // 34: agroscheme.v1.ManualApplyResponse
	(*SweepSchemeRequest)(nil),              // 35: agroscheme.v1.SweepSchemeRequest
	(*SweepSchemeResponse)(nil),             // 36: agroscheme.v1.SweepSchemeResponse
	(*UpdateApplicationStatusRequest)(nil),  // 37: agroscheme.v1.UpdateApplicationStatusRequest
	(*UpdateApplicationStatusResponse)(nil), // 38: agroscheme.v1.UpdateApplicationStatusResponse
	(*ListApplicationsRequest)(nil),         // 39: agroscheme.v1.ListApplicationsRequest
	(*ListApplicationsResponse)(nil),        // 40: agroscheme.v1.ListApplicationsResponse
	(*ExportApplicationsRequest)(nil),       // 41: agroscheme.v1.ExportApplicationsRequest
	(*ExportApplicationsResponse)(nil),      // 42: agroscheme.v1.ExportApplicationsResponse
}
var file_agroscheme_v1_agroscheme_proto_depIdxs = []int32{
	0,  // 0: agroscheme.v1.CreateFarmerResponse.farmer:type_name -> agroscheme.v1.Farmer
	0,  // 1: agroscheme.v1.GetFarmerResponse.farmer:type_name -> agroscheme.v1.Farmer
	0,  // 2: agroscheme.v1.ListFarmersResponse.farmers:type_name -> agroscheme.v1.Farmer
	0,  // 3: agroscheme.v1.SetAutoApplyResponse.farmer:type_name -> agroscheme.v1.Farmer
	9,  // 4: agroscheme.v1.ListNotificationsResponse.notifications:type_name -> agroscheme.v1.Notification
	14, // 5: agroscheme.v1.CreateSchemeResponse.scheme:type_name -> agroscheme.v1.Scheme
	14, // 6: agroscheme.v1.GetSchemeResponse.scheme:type_name -> agroscheme.v1.Scheme
	14, // 7: agroscheme.v1.ListSchemesResponse.schemes:type_name -> agroscheme.v1.Scheme
	14, // 8: agroscheme.v1.SetSchemeActiveResponse.scheme:type_name -> agroscheme.v1.Scheme
	23, // 9: agroscheme.v1.SubmitDocumentResponse.document:type_name -> agroscheme.v1.FarmerDocument
	23, // 10: agroscheme.v1.ListDocumentsResponse.documents:type_name -> agroscheme.v1.FarmerDocument
	29, // 11: agroscheme.v1.Application.status_history:type_name -> agroscheme.v1.StatusChange
	28, // 12: agroscheme.v1.EvaluateEligibilityResponse.verdict:type_name -> agroscheme.v1.Verdict
	30, // 13: agroscheme.v1.ManualApplyResponse.application:type_name -> agroscheme.v1.Application
	28, // 14: agroscheme.v1.ManualApplyResponse.verdict:type_name -> agroscheme.v1.Verdict
	30, // 15: agroscheme.v1.UpdateApplicationStatusResponse.application:type_name -> agroscheme.v1.Application
	30, // 16: agroscheme.v1.ListApplicationsResponse.applications:type_name -> agroscheme.v1.Application
	1,  // 17: agroscheme.v1.FarmersService.CreateFarmer:input_type -> agroscheme.v1.CreateFarmerRequest
	3,  // 18: agroscheme.v1.FarmersService.GetFarmer:input_type -> agroscheme.v1.GetFarmerRequest
	5,  // 19: agroscheme.v1.FarmersService.ListFarmers:input_type -> agroscheme.v1.ListFarmersRequest
	7,  // 20: agroscheme.v1.FarmersService.SetAutoApply:input_type -> agroscheme.v1.SetAutoApplyRequest
	10, // 21: agroscheme.v1.FarmersService.ListNotifications:input_type -> agroscheme.v1.ListNotificationsRequest
	12, // 22: agroscheme.v1.FarmersService.MarkNotificationRead:input_type -> agroscheme.v1.MarkNotificationReadRequest
	15, // 23: agroscheme.v1.SchemesService.CreateScheme:input_type -> agroscheme.v1.CreateSchemeRequest
	17, // 24: agroscheme.v1.SchemesService.GetScheme:input_type -> agroscheme.v1.GetSchemeRequest
	19, // 25: agroscheme.v1.SchemesService.ListSchemes:input_type -> agroscheme.v1.ListSchemesRequest
	21, // 26: agroscheme.v1.SchemesService.SetSchemeActive:input_type -> agroscheme.v1.SetSchemeActiveRequest
	24, // 27: agroscheme.v1.DocumentsService.SubmitDocument:input_type -> agroscheme.v1.SubmitDocumentRequest
	26, // 28: agroscheme.v1.DocumentsService.ListDocuments:input_type -> agroscheme.v1.ListDocumentsRequest
	31, // 29: agroscheme.v1.ApplicationsService.EvaluateEligibility:input_type -> agroscheme.v1.EvaluateEligibilityRequest
	33, // 30: agroscheme.v1.ApplicationsService.ManualApply:input_type -> agroscheme.v1.ManualApplyRequest
	35, // 31: agroscheme.v1.ApplicationsService.SweepScheme:input_type -> agroscheme.v1.SweepSchemeRequest
	37, // 32: agroscheme.v1.ApplicationsService.UpdateApplicationStatus:input_type -> agroscheme.v1.UpdateApplicationStatusRequest
	39, // 33: agroscheme.v1.ApplicationsService.ListApplications:input_type -> agroscheme.v1.ListApplicationsRequest
	41, // 34: agroscheme.v1.ApplicationsService.ExportApplications:input_type -> agroscheme.v1.ExportApplicationsRequest
	2,  // 35: agroscheme.v1.FarmersService.CreateFarmer:output_type -> agroscheme.v1.CreateFarmerResponse
	4,  // 36: agroscheme.v1.FarmersService.GetFarmer:output_type -> agroscheme.v1.GetFarmerResponse
	6,  // 37: agroscheme.v1.FarmersService.ListFarmers:output_type -> agroscheme.v1.ListFarmersResponse
	8,  // 38: agroscheme.v1.FarmersService.SetAutoApply:output_type -> agroscheme.v1.SetAutoApplyResponse
	11, // 39: agroscheme.v1.FarmersService.ListNotifications:output_type -> agroscheme.v1.ListNotificationsResponse
	13, // 40: agroscheme.v1.FarmersService.MarkNotificationRead:output_type -> agroscheme.v1.MarkNotificationReadResponse
	16, // 41: agroscheme.v1.SchemesService.CreateScheme:output_type -> agroscheme.v1.CreateSchemeResponse
	18, // 42: agroscheme.v1.SchemesService.GetScheme:output_type -> agroscheme.v1.GetSchemeResponse
	20, // 43: agroscheme.v1.SchemesService.ListSchemes:output_type -> agroscheme.v1.ListSchemesResponse
	22, // 44: agroscheme.v1.SchemesService.SetSchemeActive:output_type -> agroscheme.v1.SetSchemeActiveResponse
	25, // 45: agroscheme.v1.DocumentsService.SubmitDocument:output_type -> agroscheme.v1.SubmitDocumentResponse
	27, // 46: agroscheme.v1.DocumentsService.ListDocuments:output_type -> agroscheme.v1.ListDocumentsResponse
	32, // 47: agroscheme.v1.ApplicationsService.EvaluateEligibility:output_type -> agroscheme.v1.EvaluateEligibilityResponse
	34, // 48: agroscheme.v1.ApplicationsService.ManualApply:output_type -> agroscheme.v1.ManualApplyResponse
	36, // 49: agroscheme.v1.ApplicationsService.SweepScheme:output_type -> agroscheme.v1.SweepSchemeResponse
	38, // 50: agroscheme.v1.ApplicationsService.UpdateApplicationStatus:output_type -> agroscheme.v1.UpdateApplicationStatusResponse
	40, // 51: agroscheme.v1.ApplicationsService.ListApplications:output_type -> agroscheme.v1.ListApplicationsResponse
	42, // 52: agroscheme.v1.ApplicationsService.ExportApplications:output_type -> agroscheme.v1.ExportApplicationsResponse
	35, // [35:53] is the sub-list for method output_type
	17, // [17:35] is the sub-list for method input_type
	17, // [17:17] is the sub-list for extension type_name
	17, // [17:17] is the sub-list for extension extendee
	0,  // [0:17] is the sub-list for field type_name
}

func init() { file_agroscheme_v1_agroscheme_proto_init() }
func file_agroscheme_v1_agroscheme_proto_init() {
	if File_agroscheme_v1_agroscheme_proto != nil {
		return
	}
	file_agroscheme_v1_agroscheme_proto_msgTypes[37].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agroscheme_v1_agroscheme_proto_rawDesc), len(file_agroscheme_v1_agroscheme_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   43,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_agroscheme_v1_agroscheme_proto_goTypes,
		DependencyIndexes: file_agroscheme_v1_agroscheme_proto_depIdxs,
		MessageInfos:      file_agroscheme_v1_agroscheme_proto_msgTypes,
	}.Build()
	File_agroscheme_v1_agroscheme_proto = out.File
	file_agroscheme_v1_agroscheme_proto_goTypes = nil
	file_agroscheme_v1_agroscheme_proto_depIdxs = nil
}
